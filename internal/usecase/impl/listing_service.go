package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	listingRepo repository.ListingRepository
	accountRepo repository.AccountRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	AccountRepo repository.AccountRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		listingRepo: params.ListingRepo,
		accountRepo: params.AccountRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new OPEN listing owned by businessID.
func (srv *listingService) Create(ctx context.Context, businessID uuid.UUID, input usecase.CreateListingInput) (*entity.Listing, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	city, state := strings.TrimSpace(input.City), strings.TrimSpace(input.State)
	if city == "" || state == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("city and state are required")
	}

	workMode := input.WorkMode
	if workMode == "" {
		workMode = entity.WorkModeOnSite
	}
	if !workMode.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown work mode")
	}

	salary := strings.TrimSpace(input.Salary)
	if salary == "" {
		salary = entity.DefaultSalary
	}

	validation := true
	if input.Validation != nil {
		validation = *input.Validation
	}

	listing := &entity.Listing{
		ID:          uuid.New(),
		Title:       title,
		Description: input.Description,
		Salary:      salary,
		BusinessID:  businessID,
		Status:      entity.ListingStatusOpen,
		City:        city,
		State:       state,
		WorkMode:    workMode,
		OpenApply:   input.OpenApply,
		Validation:  validation,
		Premium:     input.Premium,
	}

	if err := srv.listingRepo.Create(ctx, listing); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to create listing")
	}

	srv.log(ctx).Info("Listing created", slog.Any("listingID", listing.ID), slog.Any("businessID", businessID))
	srv.publish(ctx, service.ListingEventCreated, listing, uuid.Nil)

	return listing, nil
}

// Get returns the listing with its business, candidates and selected candidate.
func (srv *listingService) Get(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, err := srv.findListing(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.populateBusiness(ctx, listing); err != nil {
		return nil, err
	}

	candidates, err := srv.accountRepo.FindByIDs(ctx, entity.AccountKindUser, listing.CandidateIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidates")
	}
	listing.Candidates = sanitizeAll(candidates)

	if listing.SelectedCandidateID != nil {
		selected, err := srv.accountRepo.FindByID(ctx, entity.AccountKindUser, *listing.SelectedCandidateID)
		switch {
		case err == nil:
			listing.SelectedCandidate = selected.Sanitized()
		case errors.Is(err, repository.ErrAccountNotFound):
		default:
			return nil, errors.Wrap(err, "failed to load selected candidate")
		}
	}

	return listing, nil
}

// GetPublic returns the listing with only its business populated.
func (srv *listingService) GetPublic(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, err := srv.findListing(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.populateBusiness(ctx, listing); err != nil {
		return nil, err
	}

	return publicListing(listing), nil
}

// ListOpen returns every OPEN listing with its business populated.
func (srv *listingService) ListOpen(ctx context.Context) ([]*entity.Listing, error) {
	listings, err := srv.listingRepo.FindByStatus(ctx, entity.ListingStatusOpen)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list open listings")
	}

	businessIDs := make([]uuid.UUID, 0, len(listings))
	for _, listing := range listings {
		businessIDs = append(businessIDs, listing.BusinessID)
	}

	businesses, err := srv.accountRepo.FindByIDs(ctx, entity.AccountKindBusiness, businessIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load businesses")
	}

	byID := make(map[uuid.UUID]*entity.Account, len(businesses))
	for _, business := range businesses {
		byID[business.ID] = business.Sanitized()
	}

	result := make([]*entity.Listing, 0, len(listings))
	for _, listing := range listings {
		listing.Business = byID[listing.BusinessID]
		result = append(result, publicListing(listing))
	}

	return result, nil
}

// Edit applies the whitelisted fields of input. Status and candidate fields are rejected;
// they only change through Apply, Unapply, Approve and Cancel.
func (srv *listingService) Edit(ctx context.Context, businessID, id uuid.UUID, input usecase.EditListingInput) (*entity.Listing, error) {
	if input.Status != nil || input.SelectedCandidate != nil || input.Candidates != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status, select_candidate and candidates cannot be edited")
	}

	update := repository.ListingUpdate{
		Title:       input.Title,
		Description: input.Description,
		Salary:      input.Salary,
		City:        input.City,
		State:       input.State,
		WorkMode:    input.WorkMode,
		OpenApply:   input.OpenApply,
		Validation:  input.Validation,
		Premium:     input.Premium,
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title cannot be empty")
	}
	if update.WorkMode != nil && !update.WorkMode.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown work mode")
	}

	if _, err := srv.findOwnedListing(ctx, businessID, id); err != nil {
		return nil, err
	}

	if !update.IsEmpty() {
		if err := srv.listingRepo.Update(ctx, id, update); err != nil {
			return nil, srv.mapListingError(err, "failed to update listing")
		}
	}

	return srv.findListing(ctx, id)
}

// Cancel moves an OPEN listing to CANCELLED. Cancelling twice is a no-op.
func (srv *listingService) Cancel(ctx context.Context, businessID, id uuid.UUID) (*entity.Listing, error) {
	if _, err := srv.findOwnedListing(ctx, businessID, id); err != nil {
		return nil, err
	}

	if err := srv.listingRepo.Cancel(ctx, id); err != nil {
		return nil, srv.mapListingError(err, "failed to cancel listing")
	}

	listing, err := srv.findListing(ctx, id)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Listing cancelled", slog.Any("listingID", id))
	srv.publish(ctx, service.ListingEventCancelled, listing, uuid.Nil)

	return listing, nil
}

// Apply adds userID to the candidate set. Applying twice leaves a single entry.
func (srv *listingService) Apply(ctx context.Context, userID, listingID uuid.UUID) error {
	listing, err := srv.findListing(ctx, listingID)
	if err != nil {
		return err
	}

	if _, err := srv.accountRepo.FindByID(ctx, entity.AccountKindUser, userID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.WithStack(domainerrors.ErrCandidateNotFound)
		}

		return errors.Wrap(err, "failed to find candidate")
	}

	if err := srv.listingRepo.AddCandidate(ctx, listingID, userID); err != nil {
		return srv.mapListingError(err, "failed to add candidate")
	}

	srv.log(ctx).Info("Candidate applied", slog.Any("listingID", listingID), slog.Any("userID", userID))
	srv.publish(ctx, service.ListingEventApplied, listing, userID)

	return nil
}

// Unapply removes userID from the candidate set. Removing an absent candidate is a no-op.
func (srv *listingService) Unapply(ctx context.Context, userID, listingID uuid.UUID) error {
	listing, err := srv.findListing(ctx, listingID)
	if err != nil {
		return err
	}

	if err := srv.listingRepo.RemoveCandidate(ctx, listingID, userID); err != nil {
		return srv.mapListingError(err, "failed to remove candidate")
	}

	srv.log(ctx).Info("Candidate unapplied", slog.Any("listingID", listingID), slog.Any("userID", userID))
	srv.publish(ctx, service.ListingEventUnapplied, listing, userID)

	return nil
}

// Approve closes the listing with userID selected. Approving a CLOSED listing again replaces
// the selection; a CANCELLED listing cannot be approved.
func (srv *listingService) Approve(ctx context.Context, businessID, listingID, userID uuid.UUID) (*entity.Listing, error) {
	if _, err := srv.findOwnedListing(ctx, businessID, listingID); err != nil {
		return nil, err
	}

	if _, err := srv.accountRepo.FindByID(ctx, entity.AccountKindUser, userID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.WithStack(domainerrors.ErrCandidateNotFound)
		}

		return nil, errors.Wrap(err, "failed to find candidate")
	}

	if err := srv.listingRepo.Close(ctx, listingID, userID); err != nil {
		return nil, srv.mapListingError(err, "failed to close listing")
	}

	listing, err := srv.findListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Listing closed", slog.Any("listingID", listingID), slog.Any("selectedUserID", userID))
	srv.publish(ctx, service.ListingEventClosed, listing, userID)

	return listing, nil
}

func (srv *listingService) findListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.mapListingError(err, "failed to find listing")
	}

	return listing, nil
}

func (srv *listingService) findOwnedListing(ctx context.Context, businessID, id uuid.UUID) (*entity.Listing, error) {
	listing, err := srv.findListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.BusinessID != businessID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return listing, nil
}

func (srv *listingService) populateBusiness(ctx context.Context, listing *entity.Listing) error {
	business, err := srv.accountRepo.FindByID(ctx, entity.AccountKindBusiness, listing.BusinessID)
	switch {
	case err == nil:
		listing.Business = business.Sanitized()
	case errors.Is(err, repository.ErrAccountNotFound):
	default:
		return errors.Wrap(err, "failed to load business")
	}

	return nil
}

func (srv *listingService) mapListingError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrListingNotFound):
		return errors.WithStack(domainerrors.ErrListingNotFound)
	case errors.Is(err, repository.ErrListingStatusConflict):
		return errors.WithStack(domainerrors.ErrListingTransition)
	default:
		return errors.Wrap(err, message)
	}
}

// publish sends the event on a context detached from request cancellation.
// Failures are logged only; the listing change is already committed.
func (srv *listingService) publish(ctx context.Context, eventType service.ListingEventType, listing *entity.Listing, candidateID uuid.UUID) {
	event := &service.ListingEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		ListingID:  listing.ID.String(),
		BusinessID: listing.BusinessID.String(),
		OccurredAt: srv.now().UTC(),
	}
	if candidateID != uuid.Nil {
		event.CandidateID = candidateID.String()
	}

	if err := srv.publisher.PublishListingEvent(context.WithoutCancel(ctx), event); err != nil {
		srv.log(ctx).Warn("Failed to publish listing event",
			slog.String("type", string(eventType)),
			slog.Any("listingID", listing.ID),
			slog.Any("error", err),
		)
	}
}

// publicListing strips candidate data from a listing.
func publicListing(listing *entity.Listing) *entity.Listing {
	clone := *listing
	clone.CandidateIDs = nil
	clone.SelectedCandidateID = nil
	clone.Candidates = nil
	clone.SelectedCandidate = nil

	return &clone
}

func sanitizeAll(accounts []*entity.Account) []*entity.Account {
	result := make([]*entity.Account, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, account.Sanitized())
	}

	return result
}

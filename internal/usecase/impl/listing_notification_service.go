package impl

import (
	"context"
	"fmt"
	"log/slog"

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

// listingNotificationService implements the ListingNotificationUsecase interface.
type listingNotificationService struct {
	listingRepo repository.ListingRepository
	accountRepo repository.AccountRepository
	mailSender  service.MailSender
	logger      *slog.Logger
}

// ListingNotificationServiceParams holds dependencies for ListingNotificationService, injected by Fx.
type ListingNotificationServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	AccountRepo repository.AccountRepository
	MailSender  service.MailSender
	Logger      *slog.Logger
}

// NewListingNotificationService is the constructor for listingNotificationService.
func NewListingNotificationService(params ListingNotificationServiceParams) usecase.ListingNotificationUsecase {
	return &listingNotificationService{
		listingRepo: params.ListingRepo,
		accountRepo: params.AccountRepo,
		mailSender:  params.MailSender,
		logger:      params.Logger,
	}
}

func (srv *listingNotificationService) HandleListingEvent(ctx context.Context, event *service.ListingEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	switch event.Type {
	case service.ListingEventApplied, service.ListingEventClosed, service.ListingEventCancelled:
	default:
		logger.Debug("No notification for listing event", slog.String("type", string(event.Type)))

		return nil
	}

	listingID, err := uuid.Parse(event.ListingID)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid listing_id"))
	}

	listing, err := srv.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return errors.WithStack(domainerrors.ErrListingNotFound)
		}

		return errors.Wrap(err, "failed to find listing")
	}

	business, err := srv.findAccount(ctx, entity.AccountKindBusiness, listing.BusinessID)
	if err != nil {
		return err
	}

	switch event.Type {
	case service.ListingEventApplied:
		return srv.notifyApplication(ctx, event, listing, business)
	case service.ListingEventClosed:
		return srv.notifySelection(ctx, event, listing, business)
	default:
		return srv.notifyCancellation(ctx, listing, business)
	}
}

// notifyApplication tells the business that a candidate applied.
func (srv *listingNotificationService) notifyApplication(ctx context.Context, event *service.ListingEvent, listing *entity.Listing, business *entity.Account) error {
	candidate, err := srv.findCandidate(ctx, event.CandidateID)
	if err != nil {
		return err
	}

	return srv.send(ctx, service.Email{
		To:      []string{business.Email},
		Subject: "New application: " + listing.Title,
		Body:    fmt.Sprintf("%s (%s) applied to %q.", candidate.Name, candidate.Email, listing.Title),
	})
}

// notifySelection tells the approved candidate they were selected.
func (srv *listingNotificationService) notifySelection(ctx context.Context, event *service.ListingEvent, listing *entity.Listing, business *entity.Account) error {
	candidate, err := srv.findCandidate(ctx, event.CandidateID)
	if err != nil {
		return err
	}

	return srv.send(ctx, service.Email{
		To:      []string{candidate.Email},
		Subject: "You were selected: " + listing.Title,
		Body:    fmt.Sprintf("Hi %s, %s selected you for %q.", candidate.Name, business.Name, listing.Title),
	})
}

// notifyCancellation sends one email per candidate so addresses are never shared.
func (srv *listingNotificationService) notifyCancellation(ctx context.Context, listing *entity.Listing, business *entity.Account) error {
	if len(listing.CandidateIDs) == 0 {
		return nil
	}

	candidates, err := srv.accountRepo.FindByIDs(ctx, entity.AccountKindUser, listing.CandidateIDs)
	if err != nil {
		return errors.Wrap(err, "failed to load candidates")
	}

	var errs []error
	for _, candidate := range candidates {
		err := srv.send(ctx, service.Email{
			To:      []string{candidate.Email},
			Subject: "Listing cancelled: " + listing.Title,
			Body:    fmt.Sprintf("Hi %s, %s cancelled %q.", candidate.Name, business.Name, listing.Title),
		})
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (srv *listingNotificationService) findCandidate(ctx context.Context, candidateID string) (*entity.Account, error) {
	id, err := uuid.Parse(candidateID)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid candidate_id"))
	}

	candidate, err := srv.accountRepo.FindByID(ctx, entity.AccountKindUser, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.WithStack(domainerrors.ErrCandidateNotFound)
		}

		return nil, errors.Wrap(err, "failed to find candidate")
	}

	return candidate, nil
}

func (srv *listingNotificationService) findAccount(ctx context.Context, kind entity.AccountKind, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

func (srv *listingNotificationService) send(ctx context.Context, email service.Email) error {
	if err := srv.mailSender.Send(ctx, email); err != nil {
		return errors.Wrap(domainerrors.ErrMailDelivery, err.Error())
	}

	return nil
}

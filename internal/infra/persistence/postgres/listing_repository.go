package postgres

import (
	"context"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// Create persists a new listing. The business offer list is derived from business_id,
// so no second write is needed.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(listingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// FindByID retrieves a listing with its candidate ids.
func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel

	if err := repo.withCandidates(ctx).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// FindByStatus retrieves all listings in the given status, newest first.
func (repo *listingRepository) FindByStatus(ctx context.Context, status entity.ListingStatus) ([]*entity.Listing, error) {
	return repo.findMany(ctx, "status = ?", string(status))
}

// FindByBusiness retrieves the offers of a business, newest first.
func (repo *listingRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Listing, error) {
	return repo.findMany(ctx, "business_id = ?", businessID)
}

// FindByCandidate retrieves the listings a user has applied to, newest first.
func (repo *listingRepository) FindByCandidate(ctx context.Context, userID uuid.UUID) ([]*entity.Listing, error) {
	applied := repo.db.WithContext(ctx).
		Model(&model.ListingCandidateModel{}).
		Select("listing_id").
		Where("account_id = ?", userID)

	return repo.findMany(ctx, "id IN (?)", applied)
}

// Update applies the non-nil fields of update.
func (repo *listingRepository) Update(ctx context.Context, id uuid.UUID, update repository.ListingUpdate) error {
	values := listingUpdateValues(update)
	if len(values) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", id).
		Updates(values)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// AddCandidate inserts the candidacy row, ignoring an existing one.
func (repo *listingRepository) AddCandidate(ctx context.Context, listingID, userID uuid.UUID) error {
	candidateM := &model.ListingCandidateModel{
		ListingID: listingID,
		AccountID: userID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(candidateM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrListingNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add candidate")
	}

	return nil
}

// RemoveCandidate deletes the candidacy row if present.
func (repo *listingRepository) RemoveCandidate(ctx context.Context, listingID, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("listing_id = ? AND account_id = ?", listingID, userID).
		Delete(&model.ListingCandidateModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove candidate")
	}

	return nil
}

// Close marks the listing CLOSED and records the selected candidate.
func (repo *listingRepository) Close(ctx context.Context, listingID, selectedUserID uuid.UUID) error {
	return repo.transition(ctx, listingID, map[string]any{
		"status":                string(entity.ListingStatusClosed),
		"selected_candidate_id": selectedUserID,
	}, entity.ListingStatusOpen, entity.ListingStatusClosed)
}

// Cancel marks the listing CANCELLED.
func (repo *listingRepository) Cancel(ctx context.Context, listingID uuid.UUID) error {
	return repo.transition(ctx, listingID, map[string]any{
		"status": string(entity.ListingStatusCancelled),
	}, entity.ListingStatusOpen, entity.ListingStatusCancelled)
}

// transition runs a status change guarded by the allowed source statuses in one UPDATE.
func (repo *listingRepository) transition(ctx context.Context, listingID uuid.UUID, values map[string]any, from ...entity.ListingStatus) error {
	allowed := make([]string, 0, len(from))
	for _, status := range from {
		allowed = append(allowed, string(status))
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ? AND status IN ?", listingID, allowed).
		Updates(values)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to change listing status")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", listingID).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check listing existence")
	}

	if count == 0 {
		return repository.ErrListingNotFound
	}

	return repository.ErrListingStatusConflict
}

func (repo *listingRepository) withCandidates(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Candidates", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		})
}

func (repo *listingRepository) findMany(ctx context.Context, query any, args ...any) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel

	if err := repo.withCandidates(ctx).
		Where(query, args...).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings")
	}

	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

func listingUpdateValues(update repository.ListingUpdate) map[string]any {
	values := make(map[string]any)
	if update.Title != nil {
		values["title"] = *update.Title
	}
	if update.Description != nil {
		values["description"] = *update.Description
	}
	if update.Salary != nil {
		values["salary"] = *update.Salary
	}
	if update.City != nil {
		values["city"] = *update.City
	}
	if update.State != nil {
		values["state"] = *update.State
	}
	if update.WorkMode != nil {
		values["work_mode"] = string(*update.WorkMode)
	}
	if update.OpenApply != nil {
		values["open_apply"] = *update.OpenApply
	}
	if update.Validation != nil {
		values["validation"] = *update.Validation
	}
	if update.Premium != nil {
		values["premium"] = *update.Premium
	}

	return values
}

func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	listing := &entity.Listing{
		ID:                  data.ID,
		Title:               data.Title,
		Description:         data.Description,
		Salary:              data.Salary,
		BusinessID:          data.BusinessID,
		Status:              entity.ListingStatus(data.Status),
		City:                data.City,
		State:               data.State,
		WorkMode:            entity.WorkMode(data.WorkMode),
		OpenApply:           data.OpenApply,
		Validation:          data.Validation,
		Premium:             data.Premium,
		SelectedCandidateID: data.SelectedCandidateID,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
		CandidateIDs:        make([]uuid.UUID, 0, len(data.Candidates)),
	}

	for _, candidate := range data.Candidates {
		listing.CandidateIDs = append(listing.CandidateIDs, candidate.AccountID)
	}

	return listing
}

func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	return &model.ListingModel{
		ID:                  data.ID,
		Title:               data.Title,
		Description:         data.Description,
		Salary:              data.Salary,
		BusinessID:          data.BusinessID,
		Status:              string(data.Status),
		City:                data.City,
		State:               data.State,
		WorkMode:            string(data.WorkMode),
		OpenApply:           data.OpenApply,
		Validation:          data.Validation,
		Premium:             data.Premium,
		SelectedCandidateID: data.SelectedCandidateID,
	}
}

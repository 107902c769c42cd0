// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create persists a new account together with its profile row.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAccount
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindByID retrieves an account of the given kind by its ID.
func (repo *accountRepository) FindByID(ctx context.Context, kind entity.AccountKind, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, "kind = ? AND id = ?", kind.String(), id)
}

// FindByEmail retrieves an account of the given kind by its normalized email.
func (repo *accountRepository) FindByEmail(ctx context.Context, kind entity.AccountKind, email string) (*entity.Account, error) {
	return repo.findOne(ctx, "kind = ? AND email = ?", kind.String(), email)
}

// FindByResetToken retrieves the account whose stored reset token equals token.
func (repo *accountRepository) FindByResetToken(ctx context.Context, kind entity.AccountKind, token string) (*entity.Account, error) {
	if token == "" {
		return nil, repository.ErrAccountNotFound
	}

	return repo.findOne(ctx, "kind = ? AND reset_token = ?", kind.String(), token)
}

// FindByIDs retrieves all accounts of the given kind among ids.
func (repo *accountRepository) FindByIDs(ctx context.Context, kind entity.AccountKind, ids []uuid.UUID) ([]*entity.Account, error) {
	if len(ids) == 0 {
		return []*entity.Account{}, nil
	}

	var accountModels []*model.AccountModel
	if err := repo.preloaded(ctx).
		Where("kind = ? AND id IN ?", kind.String(), ids).
		Order("created_at ASC").
		Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find accounts by IDs")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// SetResetToken overwrites the stored reset token.
func (repo *accountRepository) SetResetToken(ctx context.Context, id uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("reset_token", token)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to store reset token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// UpdatePassword replaces the password hash and clears the reset token in one statement.
func (repo *accountRepository) UpdatePassword(ctx context.Context, params repository.UpdatePasswordParams) error {
	query := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", params.ID)
	if params.ExpectedResetToken != "" {
		query = query.Where("reset_token = ?", params.ExpectedResetToken)
	}

	result := query.Updates(map[string]any{
		"password_hash": params.PasswordHash,
		"reset_token":   "",
	})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// SetActive flips the soft-delete flag of an account.
func (repo *accountRepository) SetActive(ctx context.Context, kind entity.AccountKind, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("kind = ? AND id = ?", kind.String(), id).
		Update("active", active)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (repo *accountRepository) preloaded(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("UserProfile").
		Preload("BusinessProfile")
}

func (repo *accountRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.preloaded(ctx).
		Where(query, args...).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	account := &entity.Account{
		ID:           data.ID,
		Kind:         entity.AccountKind(data.Kind),
		Name:         data.Name,
		Email:        data.Email,
		Role:         entity.Role(data.Role),
		Phone:        data.Phone,
		PictureURL:   data.PictureURL,
		PasswordHash: data.PasswordHash,
		ResetToken:   data.ResetToken,
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.UserProfile != nil {
		account.UserProfile = &entity.UserProfile{
			Resume: data.UserProfile.Resume,
		}
	}

	if data.BusinessProfile != nil {
		account.BusinessProfile = &entity.BusinessProfile{
			CNPJ:        data.BusinessProfile.CNPJ,
			Description: data.BusinessProfile.Description,
			Address: entity.Address{
				Street:       data.BusinessProfile.Street,
				Number:       data.BusinessProfile.Number,
				Neighborhood: data.BusinessProfile.Neighborhood,
				PostalCode:   data.BusinessProfile.PostalCode,
				Complement:   data.BusinessProfile.Complement,
				City:         data.BusinessProfile.City,
				State:        data.BusinessProfile.State,
			},
		}
	}

	return account
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	accountM := &model.AccountModel{
		ID:           data.ID,
		Kind:         data.Kind.String(),
		Name:         data.Name,
		Email:        data.Email,
		Role:         data.Role.String(),
		Phone:        data.Phone,
		PictureURL:   data.PictureURL,
		PasswordHash: data.PasswordHash,
		ResetToken:   data.ResetToken,
		Active:       data.Active,
	}

	if data.UserProfile != nil {
		accountM.UserProfile = &model.UserProfileModel{
			AccountID: data.ID,
			Resume:    data.UserProfile.Resume,
		}
	}

	if data.BusinessProfile != nil {
		address := data.BusinessProfile.Address
		accountM.BusinessProfile = &model.BusinessProfileModel{
			AccountID:    data.ID,
			CNPJ:         data.BusinessProfile.CNPJ,
			Description:  data.BusinessProfile.Description,
			Street:       address.Street,
			Number:       address.Number,
			Neighborhood: address.Neighborhood,
			PostalCode:   address.PostalCode,
			Complement:   address.Complement,
			City:         address.City,
			State:        address.State,
		}
	}

	return accountM
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"jobboard/config"
	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	"jobboard/internal/infra/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{
			Session: "test_session_secret_key_very_long_for_testing",
			Reset:   "test_reset_secret_key_very_long_for_testing",
		},
		PasswordReset: &config.PasswordResetConfig{
			LinkBaseURL: "https://jobs.example.test/",
		},
	}
	cfg.Env.ServiceName = "jobboard-test"
	cfg.ApplyDefaults()

	return cfg
}

func newTestHasher() service.PasswordHasher {
	return auth.NewBcryptHasherWithCost(bcrypt.MinCost)
}

func mustTokenService(cfg *config.Config) service.TokenService {
	svc, err := auth.NewJWTService(cfg)
	if err != nil {
		panic(err)
	}

	return svc
}

// fakeAccountRepository is an in-memory AccountRepository.
type fakeAccountRepository struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*entity.Account
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{accounts: make(map[uuid.UUID]*entity.Account)}
}

func copyAccount(a *entity.Account) *entity.Account {
	clone := *a
	if a.UserProfile != nil {
		profile := *a.UserProfile
		clone.UserProfile = &profile
	}
	if a.BusinessProfile != nil {
		profile := *a.BusinessProfile
		clone.BusinessProfile = &profile
	}

	return &clone
}

func (r *fakeAccountRepository) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Kind == account.Kind && existing.Email == account.Email {
			return repository.ErrDuplicateAccount
		}
		if existing.BusinessProfile != nil && account.BusinessProfile != nil &&
			existing.BusinessProfile.CNPJ != "" && existing.BusinessProfile.CNPJ == account.BusinessProfile.CNPJ {
			return repository.ErrDuplicateAccount
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	r.accounts[account.ID] = copyAccount(account)

	return nil
}

func (r *fakeAccountRepository) find(match func(*entity.Account) bool) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if match(account) {
			return copyAccount(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepository) FindByID(_ context.Context, kind entity.AccountKind, id uuid.UUID) (*entity.Account, error) {
	return r.find(func(a *entity.Account) bool { return a.Kind == kind && a.ID == id })
}

func (r *fakeAccountRepository) FindByEmail(_ context.Context, kind entity.AccountKind, email string) (*entity.Account, error) {
	return r.find(func(a *entity.Account) bool { return a.Kind == kind && a.Email == email })
}

func (r *fakeAccountRepository) FindByResetToken(_ context.Context, kind entity.AccountKind, token string) (*entity.Account, error) {
	if token == "" {
		return nil, repository.ErrAccountNotFound
	}

	return r.find(func(a *entity.Account) bool { return a.Kind == kind && a.ResetToken == token })
}

func (r *fakeAccountRepository) FindByIDs(_ context.Context, kind entity.AccountKind, ids []uuid.UUID) ([]*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*entity.Account, 0, len(ids))
	for _, id := range ids {
		if account, ok := r.accounts[id]; ok && account.Kind == kind {
			result = append(result, copyAccount(account))
		}
	}

	return result, nil
}

func (r *fakeAccountRepository) SetResetToken(_ context.Context, id uuid.UUID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return repository.ErrAccountNotFound
	}
	account.ResetToken = token

	return nil
}

func (r *fakeAccountRepository) UpdatePassword(_ context.Context, params repository.UpdatePasswordParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[params.ID]
	if !ok || (params.ExpectedResetToken != "" && account.ResetToken != params.ExpectedResetToken) {
		return repository.ErrAccountNotFound
	}
	account.PasswordHash = params.PasswordHash
	account.ResetToken = ""

	return nil
}

func (r *fakeAccountRepository) SetActive(_ context.Context, kind entity.AccountKind, id uuid.UUID, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok || account.Kind != kind {
		return repository.ErrAccountNotFound
	}
	account.Active = active

	return nil
}

// stored returns the raw stored record, credentials included.
func (r *fakeAccountRepository) stored(id uuid.UUID) *entity.Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	return copyAccount(r.accounts[id])
}

// fakeListingRepository is an in-memory ListingRepository.
type fakeListingRepository struct {
	mu         sync.Mutex
	listings   map[uuid.UUID]*entity.Listing
	candidates map[uuid.UUID][]uuid.UUID
	accounts   *fakeAccountRepository
}

func newFakeListingRepository(accounts *fakeAccountRepository) *fakeListingRepository {
	return &fakeListingRepository{
		listings:   make(map[uuid.UUID]*entity.Listing),
		candidates: make(map[uuid.UUID][]uuid.UUID),
		accounts:   accounts,
	}
}

func (r *fakeListingRepository) snapshot(listing *entity.Listing) *entity.Listing {
	clone := *listing
	clone.CandidateIDs = slices.Clone(r.candidates[listing.ID])
	if listing.SelectedCandidateID != nil {
		selected := *listing.SelectedCandidateID
		clone.SelectedCandidateID = &selected
	}

	return &clone
}

func (r *fakeListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if _, err := r.accounts.FindByID(ctx, entity.AccountKindBusiness, listing.BusinessID); err != nil {
		return repository.ErrAccountNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	listing.CreatedAt = time.Now()
	listing.UpdatedAt = listing.CreatedAt
	clone := *listing
	r.listings[listing.ID] = &clone

	return nil
}

func (r *fakeListingRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[id]
	if !ok {
		return nil, repository.ErrListingNotFound
	}

	return r.snapshot(listing), nil
}

func (r *fakeListingRepository) filter(match func(*entity.Listing) bool) []*entity.Listing {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entity.Listing
	for _, listing := range r.listings {
		if match(listing) {
			result = append(result, r.snapshot(listing))
		}
	}

	return result
}

func (r *fakeListingRepository) FindByStatus(_ context.Context, status entity.ListingStatus) ([]*entity.Listing, error) {
	return r.filter(func(l *entity.Listing) bool { return l.Status == status }), nil
}

func (r *fakeListingRepository) FindByBusiness(_ context.Context, businessID uuid.UUID) ([]*entity.Listing, error) {
	return r.filter(func(l *entity.Listing) bool { return l.BusinessID == businessID }), nil
}

func (r *fakeListingRepository) FindByCandidate(_ context.Context, userID uuid.UUID) ([]*entity.Listing, error) {
	return r.filter(func(l *entity.Listing) bool { return slices.Contains(r.candidates[l.ID], userID) }), nil
}

func (r *fakeListingRepository) Update(_ context.Context, id uuid.UUID, update repository.ListingUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[id]
	if !ok {
		return repository.ErrListingNotFound
	}
	if update.Title != nil {
		listing.Title = *update.Title
	}
	if update.Description != nil {
		listing.Description = *update.Description
	}
	if update.Salary != nil {
		listing.Salary = *update.Salary
	}
	if update.City != nil {
		listing.City = *update.City
	}
	if update.State != nil {
		listing.State = *update.State
	}
	if update.WorkMode != nil {
		listing.WorkMode = *update.WorkMode
	}
	if update.OpenApply != nil {
		listing.OpenApply = *update.OpenApply
	}
	if update.Validation != nil {
		listing.Validation = *update.Validation
	}
	if update.Premium != nil {
		listing.Premium = *update.Premium
	}

	return nil
}

func (r *fakeListingRepository) AddCandidate(_ context.Context, listingID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[listingID]; !ok {
		return repository.ErrListingNotFound
	}
	if !slices.Contains(r.candidates[listingID], userID) {
		r.candidates[listingID] = append(r.candidates[listingID], userID)
	}

	return nil
}

func (r *fakeListingRepository) RemoveCandidate(_ context.Context, listingID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.candidates[listingID] = slices.DeleteFunc(r.candidates[listingID], func(id uuid.UUID) bool { return id == userID })

	return nil
}

func (r *fakeListingRepository) transition(listingID uuid.UUID, apply func(*entity.Listing), from ...entity.ListingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[listingID]
	if !ok {
		return repository.ErrListingNotFound
	}
	if !slices.Contains(from, listing.Status) {
		return repository.ErrListingStatusConflict
	}
	apply(listing)

	return nil
}

func (r *fakeListingRepository) Close(_ context.Context, listingID, selectedUserID uuid.UUID) error {
	return r.transition(listingID, func(l *entity.Listing) {
		l.Status = entity.ListingStatusClosed
		l.SelectedCandidateID = &selectedUserID
	}, entity.ListingStatusOpen, entity.ListingStatusClosed)
}

func (r *fakeListingRepository) Cancel(_ context.Context, listingID uuid.UUID) error {
	return r.transition(listingID, func(l *entity.Listing) {
		l.Status = entity.ListingStatusCancelled
	}, entity.ListingStatusOpen, entity.ListingStatusCancelled)
}

// fakeTransactionManager runs fn directly against the in-memory repositories.
type fakeTransactionManager struct {
	accounts *fakeAccountRepository
	listings *fakeListingRepository
}

func (tm *fakeTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm)
}

func (tm *fakeTransactionManager) AccountRepo() repository.AccountRepository {
	return tm.accounts
}

func (tm *fakeTransactionManager) ListingRepo() repository.ListingRepository {
	return tm.listings
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.ListingEvent
}

func (p *recordingPublisher) PublishListingEvent(_ context.Context, event *service.ListingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) types() []service.ListingEventType {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]service.ListingEventType, 0, len(p.events))
	for _, event := range p.events {
		types = append(types, event.Type)
	}

	return types
}

package handler

import (
	"time"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressDTO is the postal address of a business.
type AddressDTO struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	PostalCode   string `json:"postal_code"`
	Complement   string `json:"complement"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// AccountResponse is the public view of an account. It has no credential fields.
type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Picture   string    `json:"picture,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Resume  string             `json:"resume,omitempty"`
	History []*ListingResponse `json:"history,omitempty"`

	CNPJ        string             `json:"cnpj,omitempty"`
	Description string             `json:"description,omitempty"`
	Address     *AddressDTO        `json:"address,omitempty"`
	Offers      []*ListingResponse `json:"offers,omitempty"`
}

// ListingResponse is the view of a job listing.
type ListingResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Salary      string    `json:"salary"`
	BusinessID  uuid.UUID `json:"business_id"`
	Status      string    `json:"status"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	WorkMode    string    `json:"work_mode"`
	OpenApply   bool      `json:"open_apply"`
	Validation  bool      `json:"validation"`
	Premium     bool      `json:"premium"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	CandidateIDs        []uuid.UUID `json:"candidates,omitempty"`
	SelectedCandidateID *uuid.UUID  `json:"select_candidate,omitempty"`

	Business          *AccountResponse   `json:"business,omitempty"`
	CandidateProfiles []*AccountResponse `json:"candidate_profiles,omitempty"`
	SelectedCandidate *AccountResponse   `json:"selected_candidate,omitempty"`
}

func toAccountResponse(account *entity.Account) *AccountResponse {
	if account == nil {
		return nil
	}

	resp := &AccountResponse{
		ID:        account.ID,
		Kind:      account.Kind.String(),
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role.String(),
		Phone:     account.Phone,
		Picture:   account.PictureURL,
		Active:    account.Active,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}

	if profile := account.UserProfile; profile != nil {
		resp.Resume = profile.Resume
		resp.History = toListingResponses(profile.History)
	}

	if profile := account.BusinessProfile; profile != nil {
		resp.CNPJ = profile.CNPJ
		resp.Description = profile.Description
		address := AddressDTO(profile.Address)
		resp.Address = &address
		resp.Offers = toListingResponses(profile.Offers)
	}

	return resp
}

func toAccountResponses(accounts []*entity.Account) []*AccountResponse {
	if len(accounts) == 0 {
		return nil
	}

	result := make([]*AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, toAccountResponse(account))
	}

	return result
}

func toListingResponse(listing *entity.Listing) *ListingResponse {
	if listing == nil {
		return nil
	}

	return &ListingResponse{
		ID:                  listing.ID,
		Title:               listing.Title,
		Description:         listing.Description,
		Salary:              listing.Salary,
		BusinessID:          listing.BusinessID,
		Status:              string(listing.Status),
		City:                listing.City,
		State:               listing.State,
		WorkMode:            string(listing.WorkMode),
		OpenApply:           listing.OpenApply,
		Validation:          listing.Validation,
		Premium:             listing.Premium,
		CreatedAt:           listing.CreatedAt,
		UpdatedAt:           listing.UpdatedAt,
		CandidateIDs:        listing.CandidateIDs,
		SelectedCandidateID: listing.SelectedCandidateID,
		Business:            toAccountResponse(listing.Business),
		CandidateProfiles:   toAccountResponses(listing.Candidates),
		SelectedCandidate:   toAccountResponse(listing.SelectedCandidate),
	}
}

func toListingResponses(listings []*entity.Listing) []*ListingResponse {
	result := make([]*ListingResponse, 0, len(listings))
	for _, listing := range listings {
		result = append(result, toListingResponse(listing))
	}

	return result
}

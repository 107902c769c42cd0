package handler

import (
	"log/slog"
	"net/http"

	"jobboard/internal/delivery/api/middleware"
	"jobboard/internal/delivery/api/response"
	"jobboard/internal/domain/entity"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Logger    *slog.Logger
}

// ListingHandler serves the job listing routes.
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler.
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// CreateListingRequest is the body of a new listing.
type CreateListingRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state" validate:"required"`
	WorkMode    string `json:"work_mode" validate:"omitempty,work_mode"`
	OpenApply   bool   `json:"open_apply"`
	Validation  *bool  `json:"validation"`
	Premium     bool   `json:"premium"`
}

// EditListingRequest is a partial listing update. Status, select_candidate and candidates
// are decoded only so the use case can reject them.
type EditListingRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Salary      *string `json:"salary"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	WorkMode    *string `json:"work_mode" validate:"omitempty,work_mode"`
	OpenApply   *bool   `json:"open_apply"`
	Validation  *bool   `json:"validation"`
	Premium     *bool   `json:"premium"`

	Status          *string   `json:"status"`
	SelectCandidate *string   `json:"select_candidate"`
	Candidates      *[]string `json:"candidates"`
}

// Create handles listing creation by the authenticated business.
func (h *ListingHandler) Create(c echo.Context) error {
	businessID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	var req CreateListingRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.listingUC.Create(c.Request().Context(), businessID, usecase.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Salary:      req.Salary,
		City:        req.City,
		State:       req.State,
		WorkMode:    entity.WorkMode(req.WorkMode),
		OpenApply:   req.OpenApply,
		Validation:  req.Validation,
		Premium:     req.Premium,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toListingResponse(listing))
}

// ListOpen returns every OPEN listing.
func (h *ListingHandler) ListOpen(c echo.Context) error {
	listings, err := h.listingUC.ListOpen(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingResponses(listings))
}

// Get returns a listing with candidates populated.
func (h *ListingHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.listingUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingResponse(listing))
}

// GetPublic returns a listing without candidate data.
func (h *ListingHandler) GetPublic(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.listingUC.GetPublic(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingResponse(listing))
}

// Edit applies a partial update to a listing of the authenticated business.
func (h *ListingHandler) Edit(c echo.Context) error {
	businessID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req EditListingRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := usecase.EditListingInput{
		Title:             req.Title,
		Description:       req.Description,
		Salary:            req.Salary,
		City:              req.City,
		State:             req.State,
		OpenApply:         req.OpenApply,
		Validation:        req.Validation,
		Premium:           req.Premium,
		Status:            req.Status,
		SelectedCandidate: req.SelectCandidate,
		Candidates:        req.Candidates,
	}
	if req.WorkMode != nil {
		mode := entity.WorkMode(*req.WorkMode)
		input.WorkMode = &mode
	}

	listing, err := h.listingUC.Edit(c.Request().Context(), businessID, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingResponse(listing))
}

// Cancel cancels a listing of the authenticated business.
func (h *ListingHandler) Cancel(c echo.Context) error {
	businessID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.listingUC.Cancel(c.Request().Context(), businessID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingResponse(listing))
}

// Apply adds the authenticated user to the listing's candidates.
func (h *ListingHandler) Apply(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.listingUC.Apply(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Application registered")
}

// Unapply removes the authenticated user from the listing's candidates.
func (h *ListingHandler) Unapply(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.listingUC.Unapply(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Application withdrawn")
}

// Approve closes a listing of the authenticated business with the given candidate.
func (h *ListingHandler) Approve(c echo.Context) error {
	businessID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	userID, err := pathUUID(c, "userId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.listingUC.Approve(c.Request().Context(), businessID, id, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Candidate approved")
}

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

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves signup, login and profile routes for both account kinds.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// SignupRequest is the signup form. Resume applies to users; cnpj, description and address to businesses.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Picture  string `json:"picture" validate:"omitempty,url"`
	Role     string `json:"role" validate:"omitempty,account_role"`

	Resume string `json:"resume"`

	CNPJ        string      `json:"cnpj" validate:"omitempty,cnpj"`
	Description string      `json:"description"`
	Address     *AddressDTO `json:"address"`
}

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session token and the logged-in account.
type LoginResponse struct {
	Account *AccountResponse `json:"account"`
	Token   string           `json:"token"`
}

// Signup returns the signup handler for kind.
func (h *AccountHandler) Signup(kind entity.AccountKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req SignupRequest
		if err := bind(c, &req); err != nil {
			return response.HandleAppError(c, err)
		}

		input := usecase.SignupInput{
			Kind:        kind,
			Name:        req.Name,
			Email:       req.Email,
			Password:    req.Password,
			Phone:       req.Phone,
			PictureURL:  req.Picture,
			Role:        entity.Role(req.Role),
			Resume:      req.Resume,
			CNPJ:        req.CNPJ,
			Description: req.Description,
		}
		if req.Address != nil {
			input.Address = entity.Address(*req.Address)
		}

		account, err := h.accountUC.Signup(c.Request().Context(), input)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusCreated, toAccountResponse(account))
	}
}

// Login returns the login handler for kind.
func (h *AccountHandler) Login(kind entity.AccountKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req LoginRequest
		if err := bind(c, &req); err != nil {
			return response.HandleAppError(c, err)
		}

		output, err := h.accountUC.Login(c.Request().Context(), usecase.LoginInput{
			Kind:     kind,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, LoginResponse{
			Account: toAccountResponse(output.Account),
			Token:   output.Token,
		})
	}
}

// GetProfile returns the authenticated caller's profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	account, err := h.accountUC.GetProfile(c.Request().Context(), identity.Kind, identity.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}

// Delete deactivates the authenticated caller's account.
func (h *AccountHandler) Delete(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	account, err := h.accountUC.Deactivate(c.Request().Context(), identity.Kind, identity.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}

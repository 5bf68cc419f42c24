package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mhdRaihan321/api-expense/internal/api/metrics"
	"github.com/mhdRaihan321/api-expense/internal/core/domain"
	"github.com/mhdRaihan321/api-expense/internal/core/ports"
)

// AccountHandler handles HTTP requests for user accounts.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// AddUser handles POST /api/users/addUser.
//
// @Summary      Create a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      addUserRequest  true  "Account details"
// @Success      201   {object}  addUserResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users/addUser [post]
func (h *AccountHandler) AddUser(c echo.Context) error {
	var req addUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	user, err := h.service.AddAccount(c.Request().Context(), ports.AddAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEmail), errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
	}

	metrics.AccountsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, addUserResponse{
		Message: "User added successfully!",
		User: userResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// UpdateUser handles POST /api/users/updateUser. The current email and
// password authenticate the caller; only the supplied new* fields change.
//
// @Summary      Update a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateUserRequest  true  "Current credentials and replacement fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users/updateUser [post]
func (h *AccountHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	err := h.service.UpdateAccount(c.Request().Context(), ports.UpdateAccountInput{
		Email:       req.Email,
		Password:    req.Password,
		NewName:     req.NewName,
		NewEmail:    req.NewEmail,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEmail), errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found!"})
		case errors.Is(err, domain.ErrIncorrectPassword):
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Incorrect password."})
		default:
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
	}

	metrics.AccountsUpdatedTotal.Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "User updated successfully!"})
}

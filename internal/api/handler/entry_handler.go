package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mhdRaihan321/api-expense/internal/api/metrics"
	"github.com/mhdRaihan321/api-expense/internal/core/domain"
	"github.com/mhdRaihan321/api-expense/internal/core/ports"
)

// EntryHandler handles HTTP requests for ledger entries.
type EntryHandler struct {
	service ports.EntryService
}

func NewEntryHandler(service ports.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// Add handles POST /api/expenses/add.
//
// @Summary      Create a ledger entry
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        body  body      addEntryRequest  true  "Entry details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/expenses/add [post]
func (h *EntryHandler) Add(c echo.Context) error {
	var req addEntryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	entry, err := h.service.AddEntry(c.Request().Context(), ports.AddEntryInput{
		Name:        req.Name,
		Amount:      req.Amount,
		Category:    req.Category,
		Type:        req.Type,
		Description: req.Description,
		Date:        req.Date,
		UserID:      req.User,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEntryType) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	metrics.EntriesCreatedTotal.WithLabelValues(string(entry.Type)).Inc()

	return c.JSON(http.StatusCreated, messageResponse{
		Message: entry.Type.Capitalized() + " added successfully!",
	})
}

// Edit handles POST /api/expenses/edit/:id. Name, amount, category,
// description and owner are overwritten wholesale; type and date keep their
// stored values.
//
// @Summary      Edit a ledger entry
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Entry id"
// @Param        body  body      editEntryRequest true  "Replacement fields"
// @Success      200   {object}  editEntryResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/expenses/edit/{id} [post]
func (h *EntryHandler) Edit(c echo.Context) error {
	id := c.Param("id")

	var req editEntryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	entry, err := h.service.EditEntry(c.Request().Context(), id, ports.EditEntryInput{
		Name:        req.Name,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		UserID:      req.User,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Expense not found!"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, editEntryResponse{
		Message: "Expense updated successfully!",
		Expense: entry,
	})
}

// List handles GET /api/expenses/ — all entries, store order.
//
// @Summary      List all ledger entries
// @Tags         expenses
// @Produce      json
// @Success      200  {array}   domain.Entry
// @Failure      500  {object}  errorResponse
// @Router       /api/expenses/ [get]
func (h *EntryHandler) List(c echo.Context) error {
	entries, err := h.service.ListEntries(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, entries)
}

// ListByOwner handles GET /api/expenses/load/:uid. An owner with zero entries
// gets an empty array with 200, not an error.
//
// @Summary      List entries owned by a user
// @Tags         expenses
// @Produce      json
// @Param        uid  path      string  true  "Owning user id"
// @Success      200  {array}   domain.Entry
// @Failure      500  {object}  errorResponse
// @Router       /api/expenses/load/{uid} [get]
func (h *EntryHandler) ListByOwner(c echo.Context) error {
	entries, err := h.service.ListEntriesByOwner(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, entries)
}

// Delete handles DELETE /api/expenses/delete/:id. The body must carry the
// owning user id; the delete is refused unless it matches the entry's stored
// owner. Each branch returns exactly once, so a store failure can never
// produce a second response after a success has been written.
//
// @Summary      Delete a ledger entry
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Entry id"
// @Param        body  body      deleteEntryRequest true  "Owning user id"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/expenses/delete/{id} [delete]
func (h *EntryHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	var req deleteEntryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}

	if req.User == "" {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "user id is required"})
	}
	if id == "" {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "expense id is required"})
	}

	err := h.service.DeleteEntry(c.Request().Context(), id, req.User)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntryNotFound):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Expense not found!"})
		case errors.Is(err, domain.ErrNotEntryOwner):
			return c.JSON(http.StatusForbidden, messageResponse{Message: "You are not allowed to delete this expense."})
		default:
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
	}

	metrics.EntriesDeletedTotal.Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "Expense deleted successfully!"})
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/globetrotter/internal/repository"
	"github.com/iliyamo/globetrotter/internal/service"
)

// BudgetHandler exposes the stored budget upsert and the derived estimate.
// The two endpoints are intentionally independent: computing an estimate
// never touches the budgets table and upserting never recomputes.
type BudgetHandler struct {
	Budgets *service.BudgetService
}

func NewBudgetHandler(b *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{Budgets: b}
}

type budgetResp struct {
	TripID          uint64 `json:"trip_id"`
	EstimatedBudget int64  `json:"estimated_budget"`
}

// Upsert handles POST /v1/budgets. Repeating the call overwrites the
// stored value in place; a trip never accumulates a second budget row.
func (h *BudgetHandler) Upsert(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		TripID          uint64 `json:"trip_id"`
		EstimatedBudget int64  `json:"estimated_budget"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.TripID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "trip_id is required"})
	}
	if body.EstimatedBudget < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "estimated_budget must not be negative"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Budgets.Upsert(ctx, body.TripID, body.EstimatedBudget)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not store budget"})
	}
	return c.JSON(http.StatusOK, budgetResp{TripID: b.TripID, EstimatedBudget: b.EstimatedBudget})
}

// GetStored handles GET /v1/budgets/:trip_id, returning the last value a
// caller upserted for the trip.
func (h *BudgetHandler) GetStored(c echo.Context) error {
	tripID, ok := parseID(c, "trip_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Budgets.Stored(ctx, tripID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTripNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		case errors.Is(err, repository.ErrBudgetNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "budget not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, budgetResp{TripID: b.TripID, EstimatedBudget: b.EstimatedBudget})
}

// Compute handles GET /v1/trips/:id/budget. The estimate is derived on
// demand from scheduled activity costs and does not reflect the stored
// budget row.
func (h *BudgetHandler) Compute(c echo.Context) error {
	tripID, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	total, err := h.Budgets.Compute(ctx, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, budgetResp{TripID: tripID, EstimatedBudget: total})
}

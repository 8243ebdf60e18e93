package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/globetrotter/internal/model"
	"github.com/iliyamo/globetrotter/internal/queue"
	"github.com/iliyamo/globetrotter/internal/repository"
	"github.com/iliyamo/globetrotter/internal/service"
)

// TripHandler exposes itinerary composition: trips, their ordered city
// stops and the activities scheduled at each stop. All mutations go
// through the itinerary service, which runs the parent-existence checks
// before any insert.
type TripHandler struct {
	Itinerary *service.ItineraryService
}

func NewTripHandler(it *service.ItineraryService) *TripHandler {
	return &TripHandler{Itinerary: it}
}

type tripResp struct {
	ID          uint64 `json:"trip_id"`
	UserID      uint64 `json:"user_id"`
	Name        string `json:"trip_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description,omitempty"`
	IsPublic    bool   `json:"is_public"`
}

type stopResp struct {
	ID        uint64 `json:"stop_id"`
	TripID    uint64 `json:"trip_id"`
	CityID    uint64 `json:"city_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	StopOrder int    `json:"stop_order"`
}

type stopActivityResp struct {
	ID            uint64 `json:"stop_activity_id"`
	StopID        uint64 `json:"stop_id"`
	ActivityID    uint64 `json:"activity_id"`
	ScheduledDate string `json:"scheduled_date"`
}

func toTripResp(t *model.Trip) tripResp {
	return tripResp{
		ID: t.ID, UserID: t.UserID, Name: t.Name,
		StartDate: fmtDate(t.StartDate), EndDate: fmtDate(t.EndDate),
		Description: t.Description, IsPublic: t.IsPublic,
	}
}

func toStopResp(s *model.TripStop) stopResp {
	return stopResp{
		ID: s.ID, TripID: s.TripID, CityID: s.CityID,
		StartDate: fmtDate(s.StartDate), EndDate: fmtDate(s.EndDate),
		StopOrder: s.StopOrder,
	}
}

// CreateTrip handles POST /v1/trips. The owner is the authenticated user.
// The end date is stored as given even when it precedes the start date;
// range validation is a known gap kept for compatibility.
func (h *TripHandler) CreateTrip(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Name        string `json:"trip_name"`
		StartDate   string `json:"start_date"`
		EndDate     string `json:"end_date"`
		Description string `json:"description"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "trip_name is required"})
	}
	start, err := parseDate(body.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date must be YYYY-MM-DD"})
	}
	end, err := parseDate(body.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must be YYYY-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.Itinerary.CreateTrip(ctx, ownerID, body.Name, start, end, body.Description)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create trip"})
	}
	return c.JSON(http.StatusCreated, toTripResp(t))
}

// ListUserTrips handles GET /v1/users/:id/trips.
func (h *TripHandler) ListUserTrips(c echo.Context) error {
	userID, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	trips, err := h.Itinerary.ListTripsByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]tripResp, 0, len(trips))
	for _, t := range trips {
		out = append(out, toTripResp(t))
	}
	return c.JSON(http.StatusOK, out)
}

// DeleteTrip handles DELETE /v1/trips/:id. The delete removes only the
// trip row; a trip.deleted event is published best-effort afterwards so
// downstream tooling can sweep the orphaned stops and budget.
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.Itinerary.DeleteTrip(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}

	ev := queue.TripDeletedEvent{
		TripID:    t.ID,
		UserID:    t.UserID,
		TripName:  t.Name,
		DeletedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		pctx, pcancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pcancel()
		if err := queue.PublishTripDeleted(pctx, ev); err != nil {
			log.Printf("trip.deleted publish skipped: %v", err)
		}
	}()

	return c.NoContent(http.StatusNoContent)
}

// AddStop handles POST /v1/trip-stops. The stop_order value is used
// verbatim; duplicates across a trip are allowed.
func (h *TripHandler) AddStop(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		TripID    uint64 `json:"trip_id"`
		CityID    uint64 `json:"city_id"`
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
		StopOrder int    `json:"stop_order"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.TripID == 0 || body.CityID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "trip_id and city_id are required"})
	}
	start, err := parseDate(body.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date must be YYYY-MM-DD"})
	}
	end, err := parseDate(body.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must be YYYY-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Itinerary.AddStop(ctx, body.TripID, body.CityID, start, end, body.StopOrder)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTripNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found"})
		case errors.Is(err, repository.ErrCityNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "city not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create stop"})
	}
	return c.JSON(http.StatusCreated, toStopResp(s))
}

// ListStops handles GET /v1/trips/:id/stops, returning stops ascending by
// stop_order with ties in insertion order.
func (h *TripHandler) ListStops(c echo.Context) error {
	tripID, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	stops, err := h.Itinerary.ListStops(ctx, tripID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]stopResp, 0, len(stops))
	for _, s := range stops {
		out = append(out, toStopResp(s))
	}
	return c.JSON(http.StatusOK, out)
}

// ListStopActivities handles GET /v1/trip-stops/:id/activities.
func (h *TripHandler) ListStopActivities(c echo.Context) error {
	stopID, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acts, err := h.Itinerary.ListStopActivities(ctx, stopID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]stopActivityResp, 0, len(acts))
	for _, sa := range acts {
		out = append(out, stopActivityResp{
			ID: sa.ID, StopID: sa.StopID, ActivityID: sa.ActivityID,
			ScheduledDate: fmtDate(sa.ScheduledDate),
		})
	}
	return c.JSON(http.StatusOK, out)
}

// AssignActivity handles POST /v1/stop-activities. The scheduled date is
// not checked against the stop's date range; that gap is kept for
// compatibility.
func (h *TripHandler) AssignActivity(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		StopID        uint64 `json:"stop_id"`
		ActivityID    uint64 `json:"activity_id"`
		ScheduledDate string `json:"scheduled_date"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.StopID == 0 || body.ActivityID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "stop_id and activity_id are required"})
	}
	scheduled, err := parseDate(body.ScheduledDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "scheduled_date must be YYYY-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sa, err := h.Itinerary.AssignActivity(ctx, body.StopID, body.ActivityID, scheduled)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrStopNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trip stop not found"})
		case errors.Is(err, repository.ErrActivityNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "activity not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not assign activity"})
	}
	return c.JSON(http.StatusCreated, stopActivityResp{
		ID: sa.ID, StopID: sa.StopID, ActivityID: sa.ActivityID,
		ScheduledDate: fmtDate(sa.ScheduledDate),
	})
}

package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/globetrotter/internal/model"
)

// CityStore is the city persistence surface the catalog handlers need.
type CityStore interface {
	Create(ctx context.Context, c *model.City) error
	ListAll(ctx context.Context) ([]*model.City, error)
}

// ActivityStore is the activity persistence surface the catalog handlers need.
type ActivityStore interface {
	Create(ctx context.Context, a *model.Activity) error
	ListAll(ctx context.Context) ([]*model.Activity, error)
}

// CatalogHandler serves the shared reference data: cities travelers can
// visit and activities they can schedule. Both are immutable after
// creation and their listings sit behind the response cache.
type CatalogHandler struct {
	Cities     CityStore
	Activities ActivityStore
}

func NewCatalogHandler(cities CityStore, activities ActivityStore) *CatalogHandler {
	return &CatalogHandler{Cities: cities, Activities: activities}
}

type cityResp struct {
	ID              uint64 `json:"city_id"`
	Name            string `json:"name"`
	Country         string `json:"country"`
	CostIndex       int    `json:"cost_index"`
	PopularityScore int    `json:"popularity_score"`
}

type activityResp struct {
	ID            uint64 `json:"activity_id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	AvgCost       *int64 `json:"avg_cost"`
	DurationHours int    `json:"duration_hours"`
}

// CreateCity handles POST /v1/cities.
func (h *CatalogHandler) CreateCity(c echo.Context) error {
	var body struct {
		Name            string `json:"name"`
		Country         string `json:"country"`
		CostIndex       int    `json:"cost_index"`
		PopularityScore int    `json:"popularity_score"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Country = strings.TrimSpace(body.Country)
	if body.Name == "" || body.Country == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and country are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	city := &model.City{
		Name:            body.Name,
		Country:         body.Country,
		CostIndex:       body.CostIndex,
		PopularityScore: body.PopularityScore,
	}
	if err := h.Cities.Create(ctx, city); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create city"})
	}
	return c.JSON(http.StatusCreated, cityResp{
		ID: city.ID, Name: city.Name, Country: city.Country,
		CostIndex: city.CostIndex, PopularityScore: city.PopularityScore,
	})
}

// ListCities handles GET /v1/cities.
func (h *CatalogHandler) ListCities(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cities, err := h.Cities.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]cityResp, 0, len(cities))
	for _, city := range cities {
		out = append(out, cityResp{
			ID: city.ID, Name: city.Name, Country: city.Country,
			CostIndex: city.CostIndex, PopularityScore: city.PopularityScore,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// CreateActivity handles POST /v1/activities. avg_cost may be omitted or
// null; it then counts as zero during budget estimation.
func (h *CatalogHandler) CreateActivity(c echo.Context) error {
	var body struct {
		Name          string `json:"name"`
		Category      string `json:"category"`
		AvgCost       *int64 `json:"avg_cost"`
		DurationHours int    `json:"duration_hours"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Category = strings.TrimSpace(body.Category)
	if body.Name == "" || body.Category == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and category are required"})
	}
	if body.AvgCost != nil && *body.AvgCost < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "avg_cost must not be negative"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	act := &model.Activity{
		Name:          body.Name,
		Category:      body.Category,
		AvgCost:       body.AvgCost,
		DurationHours: body.DurationHours,
	}
	if err := h.Activities.Create(ctx, act); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create activity"})
	}
	return c.JSON(http.StatusCreated, activityResp{
		ID: act.ID, Name: act.Name, Category: act.Category,
		AvgCost: act.AvgCost, DurationHours: act.DurationHours,
	})
}

// ListActivities handles GET /v1/activities.
func (h *CatalogHandler) ListActivities(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acts, err := h.Activities.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]activityResp, 0, len(acts))
	for _, a := range acts {
		out = append(out, activityResp{
			ID: a.ID, Name: a.Name, Category: a.Category,
			AvgCost: a.AvgCost, DurationHours: a.DurationHours,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/globetrotter/internal/handler"
	"github.com/iliyamo/globetrotter/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check,
// which load balancers and monitoring use to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the auth and user endpoints. Register and login
// live under /v1/auth and need no token; /v1/me is wrapped in JWTAuth.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	e.GET("/v1/users/:id", a.GetUser)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterCatalog registers the reference-data endpoints. Listings are
// public and sit behind the response cache; creation requires a token.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	e.GET("/v1/cities", h.ListCities, cache)
	e.GET("/v1/activities", h.ListActivities, cache)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.POST("/cities", h.CreateCity)
	auth.POST("/activities", h.CreateActivity)
}

// RegisterItinerary registers trip, stop, stop-activity and budget
// endpoints. Reads (a user's trips, a trip's stops, the derived estimate)
// are public, matching the original API; every mutation requires a token.
func RegisterItinerary(e *echo.Echo, t *handler.TripHandler, b *handler.BudgetHandler, jwtSecret string) {
	e.GET("/v1/users/:id/trips", t.ListUserTrips)
	e.GET("/v1/trips/:id/stops", t.ListStops)
	e.GET("/v1/trip-stops/:id/activities", t.ListStopActivities)
	e.GET("/v1/trips/:id/budget", b.Compute)
	e.GET("/v1/budgets/:trip_id", b.GetStored)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.POST("/trips", t.CreateTrip)
	auth.DELETE("/trips/:id", t.DeleteTrip)
	auth.POST("/trip-stops", t.AddStop)
	auth.POST("/stop-activities", t.AssignActivity)
	auth.POST("/budgets", b.Upsert)
}

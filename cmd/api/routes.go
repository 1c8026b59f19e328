package main

import (
	"expvar"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *application) routes() http.Handler {
	router := chi.NewRouter()

	// Router
	router.NotFound(app.notFoundResponse)
	router.MethodNotAllowed(app.methodNotAllowedResponse)

	// Middleware
	router.Use(app.metrics)
	router.Use(app.recoverPanic)
	router.Use(app.enableCORS)
	router.Use(app.rateLimit)
	router.Use(app.authenticate)

	// Healthcheck
	router.Get("/v1/healthcheck", app.HealthCheck)
	router.Method(http.MethodGet, "/v1/metrics", expvar.Handler())

	// User Endpoints
	router.Post("/v1/user", app.RegisterUser)
	router.Put("/v1/user/activate", app.ActivateUser)
	router.Post("/v1/user/login", app.LoginUser)

	// Player Endpoints
	router.Route("/v1/player", func(router chi.Router) {
		router.Group(func(router chi.Router) {
			router.Use(func(next http.Handler) http.Handler {
				return app.requirePermission("players:read", next)
			})
			router.Get("/{pin}", app.GetPlayer)
			router.Get("/", app.GetAllPlayers)
		})

		router.Group(func(router chi.Router) {
			router.Use(func(next http.Handler) http.Handler {
				return app.requirePermission("players:write", next)
			})
			router.Post("/", app.InsertPlayer)
			router.Delete("/{pin}", app.DeletePlayer)
			router.Patch("/{pin}", app.UpdatePlayer)
		})
	})

	// League Endpoints
	router.Route("/v1/league", func(router chi.Router) {
		router.Group(func(router chi.Router) {
			router.Use(func(next http.Handler) http.Handler {
				return app.requirePermission("leagues:read", next)
			})
			router.Get("/", app.GetAllLeagues)
			router.Get("/{pin}", app.GetLeague)

			router.Get("/{pin}/team", app.GetAllTeams)
			router.Get("/{pin}/team/{teamPin}", app.GetTeam)
			router.Get("/{pin}/game", app.GetAllGames)
			router.Get("/{pin}/game/{gamePin}", app.GetGame)

			// Statistics Endpoints
			router.Get("/{pin}/stats/player/{playerPin}", app.GetPlayerSeasonStats)
			router.Get("/{pin}/stats/players", app.GetPlayersStats)
			router.Get("/{pin}/stats/teams", app.GetTeamsStats)
			router.Get("/{pin}/stats/compare", app.ComparePlayers)
			router.Get("/{pin}/leaders", app.GetLeagueLeaders)
			router.Get("/{pin}/standings", app.GetStandings)
			router.Get("/{pin}/dashboard", app.GetDashboard)
		})

		router.Group(func(router chi.Router) {
			router.Use(func(next http.Handler) http.Handler {
				return app.requirePermission("leagues:write", next)
			})
			router.Post("/", app.InsertLeague)
			router.Patch("/{pin}", app.UpdateLeague)
			router.Delete("/{pin}", app.DeleteLeague)

			router.Post("/{pin}/team", app.InsertTeam)
			router.Patch("/{pin}/team/{teamPin}", app.UpdateTeam)
			router.Delete("/{pin}/team/{teamPin}", app.DeleteTeam)
			router.Post("/{pin}/game", app.InsertGame)
			router.Patch("/{pin}/game/{gamePin}", app.UpdateGame)
			router.Delete("/{pin}/game/{gamePin}", app.DeleteGame)
		})
	})

	return router
}

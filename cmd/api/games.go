package main

import (
	"CourtsideApi/internal/data"
	"CourtsideApi/internal/validator"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func (app *application) InsertGame(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUser(r).ID
	leaguePin := strings.ToLower(chi.URLParam(r, "pin"))

	league, err := app.models.Leagues.Get(userID, leaguePin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	var input struct {
		HomeTeamPin string    `json:"home_team_pin"`
		AwayTeamPin string    `json:"away_team_pin"`
		ScheduledAt time.Time `json:"scheduled_at"`
	}

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()

	game := &data.Game{
		UserID:      userID,
		LeagueID:    league.ID,
		HomeTeamPin: strings.ToLower(input.HomeTeamPin),
		AwayTeamPin: strings.ToLower(input.AwayTeamPin),
		ScheduledAt: input.ScheduledAt,
	}

	if data.ValidateGame(v, game); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Games.Insert(game)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrTeamNotFound):
			v.AddError("team_pins", "team(s) could not be found in this league")
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/league/%s/game/%s", leaguePin, game.PinID.Pin))
	err = app.writeJSON(w, http.StatusCreated, envelope{"game": game}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetGame(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUser(r).ID
	leaguePin := strings.ToLower(chi.URLParam(r, "pin"))
	gamePin := strings.ToLower(chi.URLParam(r, "gamePin"))

	league, err := app.models.Leagues.Get(userID, leaguePin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	game, err := app.models.Games.Get(userID, gamePin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}
	if game.LeagueID != league.ID {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"game": game}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetAllGames(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	v := validator.New()
	userID := app.contextGetUser(r).ID
	leaguePin := strings.ToLower(chi.URLParam(r, "pin"))

	league, err := app.models.Leagues.Get(userID, leaguePin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	statuses := app.readCSGameStatus(qs, nil, v)

	var filters data.Filters
	filters.Page = app.readInt(qs, "page", 1, v)
	filters.PageSize = app.readInt(qs, "page_size", 5, v)
	filters.Sort = app.readString(qs, "sort", "scheduled_at")
	filters.SortSafeList = []string{"scheduled_at", "ended_at", "created_at", "-scheduled_at",
		"-ended_at", "-created_at"}

	if data.ValidateFilters(v, filters); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	games, metadata, err := app.models.Games.GetAllForLeague(league.ID, statuses, filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"metadata": metadata, "games": games}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UpdateGame applies administrative corrections: scores, lifecycle status and
// timestamps. Team assignments are fixed at creation.
func (app *application) UpdateGame(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUser(r).ID
	leaguePin := strings.ToLower(chi.URLParam(r, "pin"))
	gamePin := strings.ToLower(chi.URLParam(r, "gamePin"))

	league, err := app.models.Leagues.Get(userID, leaguePin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	game, err := app.models.Games.Get(userID, gamePin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}
	if game.LeagueID != league.ID {
		app.notFoundResponse(w, r)
		return
	}

	var input struct {
		HomeScore   *int       `json:"home_score"`
		AwayScore   *int       `json:"away_score"`
		Status      *string    `json:"status"`
		ScheduledAt *time.Time `json:"scheduled_at"`
		StartedAt   *time.Time `json:"started_at"`
		EndedAt     *time.Time `json:"ended_at"`
	}

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()

	if input.HomeScore != nil {
		game.HomeScore = *input.HomeScore
	}
	if input.AwayScore != nil {
		game.AwayScore = *input.AwayScore
	}
	if input.Status != nil {
		switch *input.Status {
		case "scheduled":
			game.Status = data.GameScheduled
		case "active":
			game.Status = data.GameActive
		case "paused":
			game.Status = data.GamePaused
		case "completed":
			game.Status = data.GameCompleted
		default:
			v.AddError("status",
				`must be selected from the following: "scheduled","active","paused","completed"`)
		}
	}
	if input.ScheduledAt != nil {
		game.ScheduledAt = *input.ScheduledAt
	}
	if input.StartedAt != nil {
		game.StartedAt = input.StartedAt
	}
	if input.EndedAt != nil {
		game.EndedAt = input.EndedAt
	}

	if game.Status == data.GameCompleted && game.EndedAt == nil {
		v.AddError("ended_at", "must be set when a game is marked completed")
	}

	if data.ValidateGame(v, game); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Games.Update(game)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"game": game}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteGame(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUser(r).ID
	leaguePin := strings.ToLower(chi.URLParam(r, "pin"))
	gamePin := strings.ToLower(chi.URLParam(r, "gamePin"))

	league, err := app.models.Leagues.Get(userID, leaguePin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	game, err := app.models.Games.Get(userID, gamePin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}
	if game.LeagueID != league.ID {
		app.notFoundResponse(w, r)
		return
	}

	err = app.models.Games.Delete(userID, gamePin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"message": fmt.Sprintf("game (%s) successfully deleted", gamePin)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

package main

import (
	"CourtsideApi/internal/data"
	"CourtsideApi/internal/validator"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func (app *application) InsertTeam(w http.ResponseWriter, r *http.Request) {
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
		Name       string   `json:"name"`
		PlayerPins []string `json:"player_pins"`
	}

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()

	team := &data.Team{
		UserID:     userID,
		LeagueID:   league.ID,
		Name:       input.Name,
		PlayerPins: input.PlayerPins,
	}

	if data.ValidateTeam(v, team); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Teams.Insert(team)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrDuplicateTeamName):
			v.AddError("name", "team name is already in use for this league")
			app.failedValidationResponse(w, r, v.Errors)
		case errors.Is(err, data.ErrPlayerNotFound):
			v.AddError("player_pins", "player(s) could not be found")
			app.failedValidationResponse(w, r, v.Errors)
		case errors.Is(err, data.ErrDuplicatePlayer):
			v.AddError("player_pins", "player(s) already assigned to this team")
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/league/%s/team/%s", leaguePin, team.PinID.Pin))
	err = app.writeJSON(w, http.StatusCreated, envelope{"team": team}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetTeam(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUser(r).ID
	leaguePin := strings.ToLower(chi.URLParam(r, "pin"))
	teamPin := strings.ToLower(chi.URLParam(r, "teamPin"))

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

	team, err := app.models.Teams.Get(userID, teamPin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}
	if team.LeagueID != league.ID {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"team": team}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetAllTeams(w http.ResponseWriter, r *http.Request) {
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

	name := app.readString(qs, "name", "")

	var filters data.Filters
	filters.Page = app.readInt(qs, "page", 1, v)
	filters.PageSize = app.readInt(qs, "page_size", 5, v)
	filters.Sort = app.readString(qs, "sort", "name")
	filters.SortSafeList = []string{"name", "size", "created_at", "-name", "-size", "-created_at"}

	if data.ValidateFilters(v, filters); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	teams, metadata, err := app.models.Teams.GetAllForLeague(league.ID, name, filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"metadata": metadata, "teams": teams}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUser(r).ID
	leaguePin := strings.ToLower(chi.URLParam(r, "pin"))
	teamPin := strings.ToLower(chi.URLParam(r, "teamPin"))

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

	team, err := app.models.Teams.Get(userID, teamPin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}
	if team.LeagueID != league.ID {
		app.notFoundResponse(w, r)
		return
	}

	var input struct {
		Name       *string  `json:"name"`
		IsActive   *bool    `json:"is_active"`
		PlayerPins []string `json:"player_pins"`
	}

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if input.Name != nil {
		team.Name = *input.Name
	}
	if input.IsActive != nil {
		team.IsActive = *input.IsActive
	}
	team.PlayerPins = input.PlayerPins

	v := validator.New()
	if data.ValidateTeam(v, team); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Teams.Update(team)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrEditConflict):
			app.editConflictResponse(w, r)
		case errors.Is(err, data.ErrDuplicateTeamName):
			v.AddError("name", "team name is already in use for this league")
			app.failedValidationResponse(w, r, v.Errors)
		case errors.Is(err, data.ErrPlayerNotFound):
			v.AddError("player_pins", "player(s) could not be found")
			app.failedValidationResponse(w, r, v.Errors)
		case errors.Is(err, data.ErrPlayerNotOnTeam):
			v.AddError("player_pins", "player(s) not assigned to this team")
			app.failedValidationResponse(w, r, v.Errors)
		case errors.Is(err, data.ErrDuplicatePlayer):
			v.AddError("player_pins", "player(s) already assigned to this team")
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"team": team}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUser(r).ID
	leaguePin := strings.ToLower(chi.URLParam(r, "pin"))
	teamPin := strings.ToLower(chi.URLParam(r, "teamPin"))

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

	team, err := app.models.Teams.Get(userID, teamPin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}
	if team.LeagueID != league.ID {
		app.notFoundResponse(w, r)
		return
	}

	err = app.models.Teams.Delete(userID, teamPin)
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
		"message": fmt.Sprintf("team (%s) successfully deleted", teamPin)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

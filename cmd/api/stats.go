package main

import (
	"CourtsideApi/internal/cache"
	"CourtsideApi/internal/data"
	"CourtsideApi/internal/stats"
	"CourtsideApi/internal/validator"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// completedGames resolves the league by pin for the requesting user and loads
// its completed games. All statistics handlers go through this single lookup;
// nothing outside the returned set feeds any derived number.
func (app *application) completedGames(userID int64, leaguePin string) (*data.League,
	[]*data.Game, error) {
	league, err := app.models.Leagues.Get(userID, leaguePin)
	if err != nil {
		return nil, nil, err
	}

	games, err := app.models.Games.GetCompletedForLeague(league.ID)
	if err != nil {
		return nil, nil, err
	}

	return league, games, nil
}

func gameIDs(games []*data.Game) []int64 {
	ids := make([]int64, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	return ids
}

func gameResults(games []*data.Game) []stats.GameResult {
	results := make([]stats.GameResult, 0, len(games))
	for _, g := range games {
		r := stats.GameResult{
			GameID:     g.ID,
			HomeTeamID: g.HomeTeamID,
			AwayTeamID: g.AwayTeamID,
			HomeScore:  g.HomeScore,
			AwayScore:  g.AwayScore,
		}
		if g.EndedAt != nil {
			r.EndedAt = *g.EndedAt
		}
		results = append(results, r)
	}
	return results
}

func (app *application) GetPlayerSeasonStats(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUser(r).ID
	leaguePin := strings.ToLower(chi.URLParam(r, "pin"))
	playerPin := strings.ToLower(chi.URLParam(r, "playerPin"))

	_, games, err := app.completedGames(userID, leaguePin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	player, err := app.models.Players.Get(userID, playerPin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	lines, err := app.models.StatLines.GetForPlayer(player.ID, gameIDs(games))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	totals := stats.Accumulate(lines)
	averages := stats.Rates(totals)

	rating := stats.PlayerRating{
		PlayerID:   player.ID,
		PlayerName: player.FirstName + " " + player.LastName,
		Totals:     totals,
		Averages:   averages,
		Advanced:   stats.AdvancedMetrics(totals, averages),
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"player_stats": rating}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetPlayersStats(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	v := validator.New()
	userID := app.contextGetUser(r).ID
	leaguePin := strings.ToLower(chi.URLParam(r, "pin"))

	category, err := stats.ParseCategory(app.readString(qs, "sort", string(stats.CategoryPoints)))
	if err != nil {
		v.AddError("sort", err.Error())
	}

	page := app.readInt(qs, "page", 1, v)
	pageSize := app.readInt(qs, "page_size", 20, v)
	v.Check(page > 0, "page", "must be greater than zero")
	v.Check(page <= 10_000_000, "page", "must be a maximum of 10 million")
	v.Check(pageSize > 0, "page_size", "must be greater than zero")
	v.Check(pageSize <= 100, "page_size", "must be a maximum of 100")

	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	_, games, err := app.completedGames(userID, leaguePin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	lines, err := app.models.StatLines.GetForGames(gameIDs(games))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	ratings := stats.BuildPlayerRatings(lines)

	err = app.decoratePlayerRatings(ratings)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	sort.SliceStable(ratings, func(i, j int) bool {
		return stats.CategoryValue(ratings[i], category) > stats.CategoryValue(ratings[j], category)
	})

	metadata := data.CalculateMetadata(len(ratings), page, pageSize)

	offset := (page - 1) * pageSize
	if offset > len(ratings) {
		offset = len(ratings)
	}
	end := offset + pageSize
	if end > len(ratings) {
		end = len(ratings)
	}
	ratings = ratings[offset:end]

	err = app.writeJSON(w, http.StatusOK,
		envelope{"metadata": metadata, "player_stats": ratings}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetTeamsStats(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUser(r).ID
	leaguePin := strings.ToLower(chi.URLParam(r, "pin"))

	_, games, err := app.completedGames(userID, leaguePin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	ids := gameIDs(games)

	lines, err := app.models.StatLines.GetForGames(ids)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	teamLines, err := app.models.StatLines.GetTeamLinesForGames(ids)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	ratings := stats.BuildTeamRatings(lines, teamLines)

	teamIDs := make([]int64, 0, len(ratings))
	for _, rating := range ratings {
		teamIDs = append(teamIDs, rating.TeamID)
	}
	names, err := app.models.Teams.GetNamesByIDs(teamIDs)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	for i := range ratings {
		ratings[i].TeamName = teamDisplayName(names, ratings[i].TeamID)
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"team_stats": ratings}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetLeagueLeaders(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	v := validator.New()
	userID := app.contextGetUser(r).ID
	leaguePin := strings.ToLower(chi.URLParam(r, "pin"))

	category, err := stats.ParseCategory(app.readString(qs, "category",
		string(stats.CategoryPoints)))
	if err != nil {
		v.AddError("category", err.Error())
	}

	limit := app.readInt(qs, "limit", stats.DefaultLeaderboardLimit, v)
	v.Check(limit > 0, "limit", "must be greater than zero")

	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	league, games, err := app.completedGames(userID, leaguePin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	key := cache.Key(league.PinID.Pin, "leaders", string(category), strconv.Itoa(limit))
	var leaders []stats.LeaderboardEntry
	if app.cacheGet(r, key, &leaders) {
		err = app.writeJSON(w, http.StatusOK,
			envelope{"category": category, "leaders": leaders}, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	lines, err := app.models.StatLines.GetForGames(gameIDs(games))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	ratings := stats.BuildPlayerRatings(lines)

	err = app.decoratePlayerRatings(ratings)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	leaders = stats.Leaderboard(ratings, category, limit)

	app.cacheSet(r, key, leaders)

	err = app.writeJSON(w, http.StatusOK, envelope{"category": category, "leaders": leaders}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetStandings(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUser(r).ID
	leaguePin := strings.ToLower(chi.URLParam(r, "pin"))

	league, games, err := app.completedGames(userID, leaguePin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	key := cache.Key(league.PinID.Pin, "standings")
	var standings []stats.Standing
	if app.cacheGet(r, key, &standings) {
		err = app.writeJSON(w, http.StatusOK, envelope{"standings": standings}, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	standings, err = app.computeStandings(league.ID, games)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.cacheSet(r, key, standings)

	err = app.writeJSON(w, http.StatusOK, envelope{"standings": standings}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUser(r).ID
	leaguePin := strings.ToLower(chi.URLParam(r, "pin"))

	league, games, err := app.completedGames(userID, leaguePin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	key := cache.Key(league.PinID.Pin, "dashboard")
	var dashboard envelope
	if app.cacheGet(r, key, &dashboard) {
		err = app.writeJSON(w, http.StatusOK, dashboard, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	lines, err := app.models.StatLines.GetForGames(gameIDs(games))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	ratings := stats.BuildPlayerRatings(lines)

	err = app.decoratePlayerRatings(ratings)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	standings, err := app.computeStandings(league.ID, games)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	dashboard = envelope{
		"league": league,
		"leaders": envelope{
			"points":   stats.Leaderboard(ratings, stats.CategoryPoints, 5),
			"rebounds": stats.Leaderboard(ratings, stats.CategoryRebounds, 5),
			"assists":  stats.Leaderboard(ratings, stats.CategoryAssists, 5),
		},
		"standings": standings,
	}

	app.cacheSet(r, key, dashboard)

	err = app.writeJSON(w, http.StatusOK, dashboard, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	v := validator.New()
	userID := app.contextGetUser(r).ID
	leaguePin := strings.ToLower(chi.URLParam(r, "pin"))

	playerPins := app.readCSV(qs, "players", nil)
	v.Check(len(playerPins) == 2, "players", "must contain exactly two player pins")
	v.Check(validator.Unique(playerPins), "players", "must not contain duplicates")

	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	_, games, err := app.completedGames(userID, leaguePin)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	ids := gameIDs(games)

	records := make([]stats.ComparisonRecord, 0, len(playerPins))
	for _, pin := range playerPins {
		player, err := app.models.Players.Get(userID, strings.ToLower(pin))
		if err != nil {
			switch {
			case errors.Is(err, data.ErrRecordNotFound):
				app.notFoundResponse(w, r)
			default:
				app.serverErrorResponse(w, r, err)
			}
			return
		}

		lines, err := app.models.StatLines.GetForPlayer(player.ID, ids)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		record := stats.ComparePlayer(player.ID, lines)
		record.PlayerName = player.FirstName + " " + player.LastName
		records = append(records, record)
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"comparison": records}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// computeStandings ranks every team registered to the league, including teams
// with no completed games, and decorates display names.
func (app *application) computeStandings(leagueID int64, games []*data.Game) ([]stats.Standing,
	error) {
	teamIDs, err := app.models.Teams.GetIDsForLeague(leagueID)
	if err != nil {
		return nil, err
	}

	standings := stats.ComputeStandings(teamIDs, gameResults(games))

	names, err := app.models.Teams.GetNamesByIDs(teamIDs)
	if err != nil {
		return nil, err
	}
	for i := range standings {
		standings[i].TeamName = teamDisplayName(names, standings[i].TeamID)
	}

	return standings, nil
}

func (app *application) decoratePlayerRatings(ratings []stats.PlayerRating) error {
	playerIDs := make([]int64, 0, len(ratings))
	for _, rating := range ratings {
		playerIDs = append(playerIDs, rating.PlayerID)
	}

	names, err := app.models.Players.GetNamesByIDs(playerIDs)
	if err != nil {
		return err
	}
	for i := range ratings {
		ratings[i].PlayerName = names[ratings[i].PlayerID]
	}

	return nil
}

// teamDisplayName falls back to "Unknown" so a missing team record degrades a
// display field rather than failing the whole statistics request.
func teamDisplayName(names map[int64]string, teamID int64) string {
	name, ok := names[teamID]
	if !ok {
		return "Unknown"
	}
	return name
}

func (app *application) cacheGet(r *http.Request, key string, dest any) bool {
	hit, err := app.cache.Get(r.Context(), key, dest)
	if err != nil {
		app.logger.PrintError(err, map[string]string{"cache_key": key})
		return false
	}
	return hit
}

func (app *application) cacheSet(r *http.Request, key string, value any) {
	err := app.cache.Set(r.Context(), key, value)
	if err != nil {
		app.logger.PrintError(err, map[string]string{"cache_key": key})
	}
}

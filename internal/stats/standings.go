package stats

import (
	"fmt"
	"sort"
)

// Standing is one team's derived win/loss record and rank.
type Standing struct {
	TeamID        int64   `json:"-"`
	TeamName      string  `json:"team_name,omitempty"`
	Rank          int     `json:"rank"`
	GamesPlayed   int     `json:"games_played"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	HomeRecord    string  `json:"home_record"`
	AwayRecord    string  `json:"away_record"`
	PointsFor     int     `json:"points_for"`
	PointsAgainst int     `json:"points_against"`
	WinPct        float64 `json:"win_pct"`
	GamesBack     float64 `json:"games_back"`
	Streak        string  `json:"streak"`
}

// PointDiff is the team's scoring margin, the final tie-break in rankings.
func (s Standing) PointDiff() int {
	return s.PointsFor - s.PointsAgainst
}

type teamGame struct {
	result GameResult
	home   bool
}

// ComputeStandings derives a ranked standings table for the given teams over
// a set of completed games. Teams are ranked by wins, then win percentage,
// then point differential; equal teams retain the input order of teamIDs.
// A tied final score counts as a loss for both teams.
func ComputeStandings(teamIDs []int64, games []GameResult) []Standing {
	standings := make([]Standing, 0, len(teamIDs))

	for _, teamID := range teamIDs {
		var teamGames []teamGame
		for _, g := range games {
			switch teamID {
			case g.HomeTeamID:
				teamGames = append(teamGames, teamGame{result: g, home: true})
			case g.AwayTeamID:
				teamGames = append(teamGames, teamGame{result: g, home: false})
			}
		}
		standings = append(standings, computeRecord(teamID, teamGames))
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		if standings[i].WinPct != standings[j].WinPct {
			return standings[i].WinPct > standings[j].WinPct
		}
		return standings[i].PointDiff() > standings[j].PointDiff()
	})

	for i := range standings {
		standings[i].Rank = i + 1
		standings[i].GamesBack = gamesBack(standings[0], standings[i])
	}

	return standings
}

func computeRecord(teamID int64, teamGames []teamGame) Standing {
	s := Standing{TeamID: teamID, Streak: "-"}

	var homeWins, homeLosses, awayWins, awayLosses int
	for _, tg := range teamGames {
		scored, allowed := teamScores(tg)

		s.GamesPlayed++
		s.PointsFor += scored
		s.PointsAgainst += allowed

		if scored > allowed {
			s.Wins++
			if tg.home {
				homeWins++
			} else {
				awayWins++
			}
		} else {
			s.Losses++
			if tg.home {
				homeLosses++
			} else {
				awayLosses++
			}
		}
	}

	s.HomeRecord = fmt.Sprintf("%d-%d", homeWins, homeLosses)
	s.AwayRecord = fmt.Sprintf("%d-%d", awayWins, awayLosses)

	if s.GamesPlayed > 0 {
		s.WinPct = round1(float64(s.Wins) / float64(s.GamesPlayed) * 100)
		s.Streak = streak(teamGames)
	}

	return s
}

func teamScores(tg teamGame) (scored, allowed int) {
	if tg.home {
		return tg.result.HomeScore, tg.result.AwayScore
	}
	return tg.result.AwayScore, tg.result.HomeScore
}

// streak walks the up-to-five most recently ended games from the most recent
// and counts the run of results matching the first one.
func streak(teamGames []teamGame) string {
	recent := make([]teamGame, len(teamGames))
	copy(recent, teamGames)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].result.EndedAt.After(recent[j].result.EndedAt)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}

	first := won(recent[0])
	count := 0
	for _, tg := range recent {
		if won(tg) != first {
			break
		}
		count++
	}

	if first {
		return fmt.Sprintf("W%d", count)
	}
	return fmt.Sprintf("L%d", count)
}

func won(tg teamGame) bool {
	scored, allowed := teamScores(tg)
	return scored > allowed
}

func gamesBack(leader, team Standing) float64 {
	return (float64(leader.Wins-team.Wins) + float64(team.Losses-leader.Losses)) / 2
}

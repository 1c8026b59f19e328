package stats

import "math"

// round1 rounds half away from zero to one decimal place. Idempotent on
// already-rounded values.
func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// round2 rounds half away from zero to two decimal places.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// percent returns made/attempted as a one-decimal percentage, or 0 when
// nothing was attempted.
func percent(made, attempted int) float64 {
	if attempted == 0 {
		return 0
	}
	return round1(float64(made) / float64(attempted) * 100)
}

// perGame returns total/games to one decimal, or 0 when no games were played.
func perGame(total, games int) float64 {
	if games == 0 {
		return 0
	}
	return round1(float64(total) / float64(games))
}

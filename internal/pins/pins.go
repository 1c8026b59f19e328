package pins

import (
	"errors"
	"math/rand"
	"strconv"
)

var (
	ErrDuplicatePin = errors.New("duplicate pin")
	letterRunes     = []rune("abcdefghijklmnopqrstuvwxyz1234567890")
	PinScopeLeagues = "leagues"
	PinScopeTeams   = "teams"
	PinScopePlayers = "players"
	PinScopeGames   = "games"
)

type Pin struct {
	ID    int64
	Pin   string
	Scope string
}

func (p Pin) MarshalJSON() ([]byte, error) {
	jsonValue := strconv.Quote(p.Pin)
	return []byte(jsonValue), nil
}

func GeneratePin(l int) string {
	b := make([]rune, l)
	for i := range b {
		b[i] = letterRunes[rand.Intn(len(letterRunes))]
	}
	return string(b)
}

package data

import (
	"database/sql"
	"errors"
)

var ErrRecordNotFound = errors.New("record not found")
var ErrEditConflict = errors.New("edit conflict")

type Models struct {
	Users       UserModel
	Tokens      TokenModel
	Permissions PermissionModel
	Leagues     LeagueModel
	Teams       TeamModel
	Players     PlayerModel
	Games       GameModel
	StatLines   StatLineModel
}

func NewModels(initDb *sql.DB) Models {
	return Models{
		Users:       UserModel{db: initDb},
		Tokens:      TokenModel{db: initDb},
		Permissions: PermissionModel{db: initDb},
		Leagues:     LeagueModel{db: initDb},
		Teams:       TeamModel{db: initDb},
		Players:     PlayerModel{db: initDb},
		Games:       GameModel{db: initDb},
		StatLines:   StatLineModel{db: initDb},
	}
}

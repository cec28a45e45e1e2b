package db

import (
	"database/sql"
)

type RankingEntry struct {
	Week     string
	Idx      int64
	Position sql.NullInt64
	Name     sql.NullString
	Points   sql.NullInt64
}

type RankingPlayer struct {
	Week     string
	EntryIdx int64
	Idx      int64
	Nickname sql.NullString
}

type RankingWeek struct {
	Week      string
	FetchedAt int64
}

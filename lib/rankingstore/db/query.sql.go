package db

import (
	"context"
	"database/sql"
)

const createEntry = `-- name: CreateEntry :exec
insert into RankingEntry(week, idx, position, name, points) values (?, ?, ?, ?, ?)
`

type CreateEntryParams struct {
	Week     string
	Idx      int64
	Position sql.NullInt64
	Name     sql.NullString
	Points   sql.NullInt64
}

func (q *Queries) CreateEntry(ctx context.Context, arg CreateEntryParams) error {
	_, err := q.db.ExecContext(ctx, createEntry,
		arg.Week,
		arg.Idx,
		arg.Position,
		arg.Name,
		arg.Points,
	)
	return err
}

const createPlayer = `-- name: CreatePlayer :exec
insert into RankingPlayer(week, entryIdx, idx, nickname) values (?, ?, ?, ?)
`

type CreatePlayerParams struct {
	Week     string
	EntryIdx int64
	Idx      int64
	Nickname sql.NullString
}

func (q *Queries) CreatePlayer(ctx context.Context, arg CreatePlayerParams) error {
	_, err := q.db.ExecContext(ctx, createPlayer,
		arg.Week,
		arg.EntryIdx,
		arg.Idx,
		arg.Nickname,
	)
	return err
}

const createWeek = `-- name: CreateWeek :exec
insert into RankingWeek(week, fetchedAt) values (?, ?)
`

type CreateWeekParams struct {
	Week      string
	FetchedAt int64
}

func (q *Queries) CreateWeek(ctx context.Context, arg CreateWeekParams) error {
	_, err := q.db.ExecContext(ctx, createWeek, arg.Week, arg.FetchedAt)
	return err
}

const deleteEntries = `-- name: DeleteEntries :exec
delete from RankingEntry where week = ?
`

func (q *Queries) DeleteEntries(ctx context.Context, week string) error {
	_, err := q.db.ExecContext(ctx, deleteEntries, week)
	return err
}

const deletePlayers = `-- name: DeletePlayers :exec
delete from RankingPlayer where week = ?
`

func (q *Queries) DeletePlayers(ctx context.Context, week string) error {
	_, err := q.db.ExecContext(ctx, deletePlayers, week)
	return err
}

const deleteWeek = `-- name: DeleteWeek :exec
delete from RankingWeek where week = ?
`

func (q *Queries) DeleteWeek(ctx context.Context, week string) error {
	_, err := q.db.ExecContext(ctx, deleteWeek, week)
	return err
}

const findPlayerWeeks = `-- name: FindPlayerWeeks :many
select RankingPlayer.week, RankingEntry.name from RankingPlayer
inner join RankingEntry on
    RankingEntry.week = RankingPlayer.week and
    RankingEntry.idx = RankingPlayer.entryIdx
where lower(RankingPlayer.nickname) = lower(?)
order by RankingPlayer.week desc
`

type FindPlayerWeeksRow struct {
	Week string
	Name sql.NullString
}

func (q *Queries) FindPlayerWeeks(ctx context.Context, lower string) ([]FindPlayerWeeksRow, error) {
	rows, err := q.db.QueryContext(ctx, findPlayerWeeks, lower)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []FindPlayerWeeksRow
	for rows.Next() {
		var i FindPlayerWeeksRow
		if err := rows.Scan(&i.Week, &i.Name); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getEntries = `-- name: GetEntries :many
select idx, position, name, points from RankingEntry
where week = ?
order by idx asc
`

type GetEntriesRow struct {
	Idx      int64
	Position sql.NullInt64
	Name     sql.NullString
	Points   sql.NullInt64
}

func (q *Queries) GetEntries(ctx context.Context, week string) ([]GetEntriesRow, error) {
	rows, err := q.db.QueryContext(ctx, getEntries, week)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetEntriesRow
	for rows.Next() {
		var i GetEntriesRow
		if err := rows.Scan(
			&i.Idx,
			&i.Position,
			&i.Name,
			&i.Points,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getPlayers = `-- name: GetPlayers :many
select entryIdx, idx, nickname from RankingPlayer
where week = ?
order by entryIdx asc, idx asc
`

type GetPlayersRow struct {
	EntryIdx int64
	Idx      int64
	Nickname sql.NullString
}

func (q *Queries) GetPlayers(ctx context.Context, week string) ([]GetPlayersRow, error) {
	rows, err := q.db.QueryContext(ctx, getPlayers, week)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetPlayersRow
	for rows.Next() {
		var i GetPlayersRow
		if err := rows.Scan(&i.EntryIdx, &i.Idx, &i.Nickname); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getWeek = `-- name: GetWeek :one
select week, fetchedAt from RankingWeek where week = ?
`

func (q *Queries) GetWeek(ctx context.Context, week string) (RankingWeek, error) {
	row := q.db.QueryRowContext(ctx, getWeek, week)
	var i RankingWeek
	err := row.Scan(&i.Week, &i.FetchedAt)
	return i, err
}

const getWeeks = `-- name: GetWeeks :many
select week, fetchedAt from RankingWeek order by week desc
`

func (q *Queries) GetWeeks(ctx context.Context) ([]RankingWeek, error) {
	rows, err := q.db.QueryContext(ctx, getWeeks)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RankingWeek
	for rows.Next() {
		var i RankingWeek
		if err := rows.Scan(&i.Week, &i.FetchedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

package rankingstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hltv-crawler/lib/rankingstore/db"
	"hltv-crawler/lib/scrapers/hltv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("hltv-crawler.lib.rankingstore")

var ErrNotFound = errors.New("rankingstore: week not found")

// Snapshot is a ranking as it was stored for a given week.
type Snapshot struct {
	Week      string               `json:"week"`
	FetchedAt time.Time            `json:"fetched_at"`
	Records   []hltv.RankingRecord `json:"records"`
}

type Week struct {
	Week      string    `json:"week"`
	FetchedAt time.Time `json:"fetched_at"`
}

// PlayerWeek is a week a player was part of a ranked roster.
type PlayerWeek struct {
	Week string  `json:"week"`
	Team *string `json:"team"`
}

// Store persists one ranking snapshot per week.
type Store struct {
	db  *sql.DB
	qry *db.Queries
	now func() time.Time
}

func Open(ctx context.Context, config Config) (*Store, error) {
	database, err := config.OpenDB(ctx)
	if err != nil {
		return nil, err
	}
	return New(database), nil
}

// New wraps a database that already has the schema applied.
func New(database *sql.DB) *Store {
	return &Store{
		db:  database,
		qry: db.New(database),
		now: time.Now,
	}
}

func (s *Store) Close() error {
	return s.db.Close()
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}

func nullString(str *string) sql.NullString {
	if str == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *str, Valid: true}
}

func fromNullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	value := int(n.Int64)
	return &value
}

func fromNullString(str sql.NullString) *string {
	if !str.Valid {
		return nil
	}
	value := str.String
	return &value
}

// Save replaces the snapshot of the given week with records.
func (s *Store) Save(ctx context.Context, week hltv.RankingDate, records []hltv.RankingRecord) error {
	ctx, span := tracer.Start(ctx, "Save")
	defer span.End()

	key := week.String()
	span.SetAttributes(
		attribute.String("week", key),
		attribute.Int("records", len(records)),
	)

	err := s.save(ctx, key, records)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (s *Store) save(ctx context.Context, week string, records []hltv.RankingRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	err = txqry.DeletePlayers(ctx, week)
	if err != nil {
		return err
	}
	err = txqry.DeleteEntries(ctx, week)
	if err != nil {
		return err
	}
	err = txqry.DeleteWeek(ctx, week)
	if err != nil {
		return err
	}

	err = txqry.CreateWeek(ctx, db.CreateWeekParams{
		Week:      week,
		FetchedAt: s.now().Unix(),
	})
	if err != nil {
		return err
	}

	for i, r := range records {
		err = txqry.CreateEntry(ctx, db.CreateEntryParams{
			Week:     week,
			Idx:      int64(i),
			Position: nullInt(r.Position),
			Name:     nullString(r.Name),
			Points:   nullInt(r.Points),
		})
		if err != nil {
			return fmt.Errorf("create entry %d: %w", i, err)
		}

		for j, p := range r.Players {
			err = txqry.CreatePlayer(ctx, db.CreatePlayerParams{
				Week:     week,
				EntryIdx: int64(i),
				Idx:      int64(j),
				Nickname: nullString(p),
			})
			if err != nil {
				return fmt.Errorf("create player %d of entry %d: %w", j, i, err)
			}
		}
	}

	return tx.Commit()
}

// Get returns the snapshot stored for a week, or ErrNotFound.
func (s *Store) Get(ctx context.Context, week hltv.RankingDate) (Snapshot, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()

	key := week.String()
	span.SetAttributes(attribute.String("week", key))

	snapshot, err := s.get(ctx, key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return snapshot, err
}

func (s *Store) get(ctx context.Context, week string) (Snapshot, error) {
	row, err := s.qry.GetWeek(ctx, week)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, week)
	}
	if err != nil {
		return Snapshot{}, err
	}

	entries, err := s.qry.GetEntries(ctx, week)
	if err != nil {
		return Snapshot{}, err
	}
	players, err := s.qry.GetPlayers(ctx, week)
	if err != nil {
		return Snapshot{}, err
	}

	records := make([]hltv.RankingRecord, len(entries))
	for i, e := range entries {
		records[i] = hltv.RankingRecord{
			Position: fromNullInt(e.Position),
			Name:     fromNullString(e.Name),
			Points:   fromNullInt(e.Points),
			Players:  []*string{},
		}
	}
	// players are sorted by (entry, idx) so appending keeps roster order
	for _, p := range players {
		if p.EntryIdx < 0 || int(p.EntryIdx) >= len(records) {
			continue
		}
		r := &records[p.EntryIdx]
		r.Players = append(r.Players, fromNullString(p.Nickname))
	}

	return Snapshot{
		Week:      row.Week,
		FetchedAt: time.Unix(row.FetchedAt, 0),
		Records:   records,
	}, nil
}

// Weeks lists every stored week, newest first.
func (s *Store) Weeks(ctx context.Context) ([]Week, error) {
	ctx, span := tracer.Start(ctx, "Weeks")
	defer span.End()

	rows, err := s.qry.GetWeeks(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	weeks := make([]Week, len(rows))
	for i, r := range rows {
		weeks[i] = Week{
			Week:      r.Week,
			FetchedAt: time.Unix(r.FetchedAt, 0),
		}
	}
	return weeks, nil
}

// PlayerHistory lists the weeks (newest first) a nickname appeared on a
// ranked roster, matched case-insensitively.
func (s *Store) PlayerHistory(ctx context.Context, nickname string) ([]PlayerWeek, error) {
	ctx, span := tracer.Start(ctx, "PlayerHistory")
	defer span.End()

	span.SetAttributes(attribute.String("nickname", nickname))

	rows, err := s.qry.FindPlayerWeeks(ctx, nickname)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	history := make([]PlayerWeek, len(rows))
	for i, r := range rows {
		history[i] = PlayerWeek{
			Week: r.Week,
			Team: fromNullString(r.Name),
		}
	}
	return history, nil
}

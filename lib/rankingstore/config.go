package rankingstore

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"hltv-crawler/lib/rankingstore/db"
)

const memoryFile = ":memory:"

// Config selects where snapshots are stored, a remote libsql database when
// Url is set, otherwise a local sqlite file (or ":memory:").
type Config struct {
	File      string `json:"file"`
	Url       string `json:"url"`
	AuthToken string `json:"auth_token"`
}

func (c Config) Enabled() bool {
	return c.File != "" || c.Url != ""
}

func (c Config) openLibsql() (*sql.DB, error) {
	link, err := url.Parse(c.Url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if c.AuthToken != "" {
		query := link.Query()
		query.Set("authToken", c.AuthToken)
		link.RawQuery = query.Encode()
	}
	return sql.Open("libsql", link.String())
}

func (c Config) openSqlite() (*sql.DB, error) {
	if c.File == memoryFile {
		database, err := sql.Open("sqlite", memoryFile)
		if err != nil {
			return nil, err
		}
		// every connection to :memory: gets its own database
		database.SetMaxOpenConns(1)
		return database, nil
	}

	err := os.MkdirAll(filepath.Dir(c.File), 0755)
	if err != nil {
		return nil, err
	}
	database, err := sql.Open("sqlite", c.File)
	if err != nil {
		return nil, err
	}
	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	database.SetMaxOpenConns(1)
	_, err = database.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// OpenDB opens the configured database and makes sure the schema exists.
func (c Config) OpenDB(ctx context.Context) (*sql.DB, error) {
	var (
		database *sql.DB
		err      error
	)
	switch {
	case c.Url != "":
		database, err = c.openLibsql()
	case c.File != "":
		database, err = c.openSqlite()
	default:
		return nil, fmt.Errorf("rankingstore: neither a file nor a url was specified")
	}
	if err != nil {
		return nil, fmt.Errorf("rankingstore: open: %w", err)
	}

	_, err = database.ExecContext(ctx, db.Schema)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("rankingstore: create schema: %w", err)
	}
	return database, nil
}

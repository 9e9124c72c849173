package db

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	// use the sqlite db driver.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed base.sql
var baseSQL string

// Database is a key-value store backed by sqlite. Each key holds one serialized collection.
type Database struct {
	conn     *sql.DB
	filename string
}

// NewDatabase connects to the sqlite database at the given filename and initializes the
// structure if not present.
func NewDatabase(ctx context.Context, filename string) (*Database, error) {
	conn, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("error connecting to sqlite db at %s: %w", filename, err)
	}

	database := Database{
		conn:     conn,
		filename: filename,
	}

	err = database.initialize(ctx)
	if err != nil {
		conn.Close()

		return nil, err
	}

	return &database, nil
}

func (d *Database) initialize(ctx context.Context) error {
	// run idempotent setup sql to create empty tables if they don't exist
	if _, err := d.conn.ExecContext(ctx, baseSQL); err != nil {
		return fmt.Errorf("error running base sql: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (d *Database) Close() error {
	return d.conn.Close()
}

// Load returns the value stored under key. The boolean is false when nothing has been saved
// under key yet.
func (d *Database) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte

	err := d.conn.QueryRowContext(ctx, `SELECT value FROM store WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("error loading '%s': %w", key, err)
	}

	return value, true, nil
}

// Save replaces the value stored under key.
func (d *Database) Save(ctx context.Context, key string, value []byte) error {
	_, err := d.conn.ExecContext(
		ctx,
		`INSERT INTO store (key, value, updated_datetime) VALUES ($1, $2, $3)
		     ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_datetime = excluded.updated_datetime`,
		key, value, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("error saving '%s': %w", key, err)
	}

	log.Debug().Str("key", key).Int("bytes", len(value)).Msg("saved collection")

	return nil
}

// Keys returns every key that has a saved value.
func (d *Database) Keys(ctx context.Context) ([]string, error) {
	rows, err := d.conn.QueryContext(ctx, `SELECT key FROM store ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("error loading keys: %w", err)
	}
	defer rows.Close()

	keys := []string{}

	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("error scanning keys: %w", err)
		}

		keys = append(keys, key)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error scanning keys: %w", err)
	}

	return keys, nil
}

// Filename returns the path of the sqlite file.
func (d *Database) Filename() string {
	return d.filename
}

// Package sqlstore is a SQLite-backed store.Store, for callers that want
// durable persistence across process restarts.
package sqlstore

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/fishgame-core/store"
)

// DB wraps a SQLite connection shared by all sub-stores.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at path and runs migrations.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		external_id INTEGER NOT NULL UNIQUE,
		credits INTEGER NOT NULL DEFAULT 0,
		timezone TEXT NOT NULL DEFAULT 'UTC',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS ponds (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		capacity INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS specimens (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		species_id INTEGER NOT NULL,
		size_baby_ratio REAL NOT NULL,
		size_adult_ratio REAL NOT NULL,
		lifespan_days_ratio REAL NOT NULL,
		catch_age REAL NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS fishing_history_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		species_id INTEGER NOT NULL,
		caught_count INTEGER NOT NULL,
		sold_count INTEGER NOT NULL,
		smallest_catch_size_ratio REAL NOT NULL,
		largest_catch_size_ratio REAL NOT NULL,
		last_catch TEXT NOT NULL,
		first_sell TEXT,
		last_sell TEXT,
		UNIQUE(user_id, species_id)
	);

	CREATE TABLE IF NOT EXISTS items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		type_id INTEGER NOT NULL,
		properties_json TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS user_locations (
		user_id INTEGER NOT NULL REFERENCES users(id),
		location_id INTEGER NOT NULL,
		unlocked_at TEXT NOT NULL,
		UNIQUE(user_id, location_id)
	);

	CREATE INDEX IF NOT EXISTS idx_specimens_user ON specimens(user_id);
	CREATE INDEX IF NOT EXISTS idx_items_user_type ON items(user_id, type_id);
	CREATE INDEX IF NOT EXISTS idx_user_locations_user ON user_locations(user_id);
	CREATE INDEX IF NOT EXISTS idx_ponds_user ON ponds(user_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Store is the SQLite-backed store.Store implementation.
type Store struct {
	db *DB
}

// New wraps an open DB as a store.Store.
func New(db *DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() store.UserStore                   { return &userStore{db: s.db} }
func (s *Store) Specimens() store.SpecimenStore            { return &specimenStore{db: s.db} }
func (s *Store) FishingHistory() store.FishingHistoryStore { return &historyStore{db: s.db} }
func (s *Store) Items() store.ItemStore                    { return &itemStore{db: s.db} }
func (s *Store) Unlocks() store.UnlockStore                { return &unlockStore{db: s.db} }
func (s *Store) Ponds() store.PondStore                    { return &pondStore{db: s.db} }

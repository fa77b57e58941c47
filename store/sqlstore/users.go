package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/talgya/fishgame-core/gameerr"
	"github.com/talgya/fishgame-core/store"
)

type userStore struct {
	db *DB
}

type userRow struct {
	ID         int64  `db:"id"`
	ExternalID int64  `db:"external_id"`
	Credits    int64  `db:"credits"`
	Timezone   string `db:"timezone"`
	CreatedAt  string `db:"created_at"`
	UpdatedAt  string `db:"updated_at"`
}

func (r userRow) toUser() (store.User, error) {
	created, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return store.User{}, err
	}
	updated, err := time.Parse(time.RFC3339Nano, r.UpdatedAt)
	if err != nil {
		return store.User{}, err
	}
	return store.User{
		ID: r.ID, ExternalID: r.ExternalID, Credits: r.Credits, Timezone: r.Timezone,
		CreatedAt: created, UpdatedAt: updated,
	}, nil
}

func (s *userStore) FindByExternalID(ctx context.Context, externalID int64) (*store.User, error) {
	var row userRow
	err := s.db.conn.GetContext(ctx, &row,
		`SELECT id, external_id, credits, timezone, created_at, updated_at FROM users WHERE external_id = ?`, externalID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err, "find user")
	}
	u, err := row.toUser()
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userStore) Create(ctx context.Context, externalID int64) (store.User, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.conn.ExecContext(ctx,
		`INSERT INTO users (external_id, credits, timezone, created_at, updated_at) VALUES (?, 0, 'UTC', ?, ?)`,
		externalID, now, now)
	if err != nil {
		return store.User{}, translate(err, "create user")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return store.User{}, gameerr.DatabaseOther(err)
	}
	u, err := (&userRow{ID: id, ExternalID: externalID, Timezone: "UTC", CreatedAt: now, UpdatedAt: now}).toUser()
	if err != nil {
		return store.User{}, err
	}
	return u, nil
}

func (s *userStore) Save(ctx context.Context, u store.User) (store.User, error) {
	u.UpdatedAt = time.Now().UTC()
	res, err := s.db.conn.ExecContext(ctx,
		`UPDATE users SET credits = ?, timezone = ?, updated_at = ? WHERE id = ?`,
		u.Credits, u.Timezone, u.UpdatedAt.Format(time.RFC3339Nano), u.ID)
	if err != nil {
		return store.User{}, translate(err, "save user")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return store.User{}, gameerr.DatabaseOther(err)
	}
	if n == 0 {
		return store.User{}, gameerr.DatabaseNotFound("user not found")
	}
	return u, nil
}

package sqlstore

import (
	"context"

	"github.com/talgya/fishgame-core/gameerr"
	"github.com/talgya/fishgame-core/store"
)

type pondStore struct {
	db *DB
}

type pondRow struct {
	ID       int64 `db:"id"`
	UserID   int64 `db:"user_id"`
	Capacity int32 `db:"capacity"`
}

func (r pondRow) toPond() store.Pond {
	return store.Pond{ID: r.ID, UserID: r.UserID, Capacity: r.Capacity}
}

func (s *pondStore) Create(ctx context.Context, p store.Pond) (store.Pond, error) {
	res, err := s.db.conn.ExecContext(ctx,
		`INSERT INTO ponds (user_id, capacity) VALUES (?, ?)`, p.UserID, p.Capacity)
	if err != nil {
		return store.Pond{}, translate(err, "create pond")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return store.Pond{}, gameerr.DatabaseOther(err)
	}
	p.ID = id
	return p, nil
}

func (s *pondStore) FindByUser(ctx context.Context, userID int64) ([]store.Pond, error) {
	var rows []pondRow
	err := s.db.conn.SelectContext(ctx, &rows,
		`SELECT id, user_id, capacity FROM ponds WHERE user_id = ?`, userID)
	if err != nil {
		return nil, translate(err, "find ponds")
	}
	out := make([]store.Pond, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toPond())
	}
	return out, nil
}

func (s *pondStore) Save(ctx context.Context, p store.Pond) (store.Pond, error) {
	res, err := s.db.conn.ExecContext(ctx,
		`UPDATE ponds SET capacity = ? WHERE id = ?`, p.Capacity, p.ID)
	if err != nil {
		return store.Pond{}, translate(err, "save pond")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return store.Pond{}, gameerr.DatabaseOther(err)
	}
	if n == 0 {
		return store.Pond{}, gameerr.DatabaseNotFound("pond not found")
	}
	return p, nil
}

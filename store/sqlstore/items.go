package sqlstore

import (
	"context"
	"time"

	"github.com/talgya/fishgame-core/content"
	"github.com/talgya/fishgame-core/gameerr"
	"github.com/talgya/fishgame-core/item"
)

type itemStore struct {
	db *DB
}

type itemRow struct {
	ID             int64  `db:"id"`
	UserID         int64  `db:"user_id"`
	TypeID         int32  `db:"type_id"`
	PropertiesJSON string `db:"properties_json"`
	CreatedAt      string `db:"created_at"`
	UpdatedAt      string `db:"updated_at"`
}

func (r itemRow) toItem() (item.Item, error) {
	created, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return item.Item{}, err
	}
	updated, err := time.Parse(time.RFC3339Nano, r.UpdatedAt)
	if err != nil {
		return item.Item{}, err
	}
	return item.FromParts(r.ID, r.UserID, content.ItemTypeID(r.TypeID), []byte(r.PropertiesJSON), created, updated)
}

func (s *itemStore) FindByTypeAndUser(ctx context.Context, typeID content.ItemTypeID, userID int64) ([]item.Item, error) {
	var rows []itemRow
	err := s.db.conn.SelectContext(ctx, &rows,
		`SELECT id, user_id, type_id, properties_json, created_at, updated_at FROM items WHERE type_id = ? AND user_id = ?`,
		typeID, userID)
	if err != nil {
		return nil, translate(err, "find items by type and user")
	}
	return toItems(rows)
}

func (s *itemStore) FindByUser(ctx context.Context, userID int64) ([]item.Item, error) {
	var rows []itemRow
	err := s.db.conn.SelectContext(ctx, &rows,
		`SELECT id, user_id, type_id, properties_json, created_at, updated_at FROM items WHERE user_id = ?`, userID)
	if err != nil {
		return nil, translate(err, "find items by user")
	}
	return toItems(rows)
}

func toItems(rows []itemRow) ([]item.Item, error) {
	out := make([]item.Item, 0, len(rows))
	for _, r := range rows {
		it, err := r.toItem()
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

func (s *itemStore) Create(ctx context.Context, it item.Item) (item.Item, error) {
	props, err := it.MarshalProperties()
	if err != nil {
		return item.Item{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.conn.ExecContext(ctx,
		`INSERT INTO items (user_id, type_id, properties_json, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		it.UserID, it.TypeID, string(props), now, now)
	if err != nil {
		return item.Item{}, translate(err, "create item")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return item.Item{}, gameerr.DatabaseOther(err)
	}
	created, _ := time.Parse(time.RFC3339Nano, now)
	return item.FromParts(id, it.UserID, it.TypeID, props, created, created)
}

func (s *itemStore) Save(ctx context.Context, it item.Item) (item.Item, error) {
	props, err := it.MarshalProperties()
	if err != nil {
		return item.Item{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.conn.ExecContext(ctx,
		`UPDATE items SET properties_json = ?, updated_at = ? WHERE id = ?`,
		string(props), now, it.ID)
	if err != nil {
		return item.Item{}, translate(err, "save item")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return item.Item{}, gameerr.DatabaseOther(err)
	}
	if n == 0 {
		return item.Item{}, gameerr.DatabaseNotFound("item not found")
	}
	updated, _ := time.Parse(time.RFC3339Nano, now)
	it.UpdatedAt = updated
	return it, nil
}

func (s *itemStore) Delete(ctx context.Context, it item.Item) error {
	_, err := s.db.conn.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, it.ID)
	if err != nil {
		return translate(err, "delete item")
	}
	return nil
}

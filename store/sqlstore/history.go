package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/talgya/fishgame-core/content"
	"github.com/talgya/fishgame-core/gameerr"
	"github.com/talgya/fishgame-core/history"
)

type historyStore struct {
	db *DB
}

type historyRow struct {
	ID                     int64          `db:"id"`
	UserID                 int64          `db:"user_id"`
	SpeciesID              int32          `db:"species_id"`
	CaughtCount            uint32         `db:"caught_count"`
	SoldCount              uint32         `db:"sold_count"`
	SmallestCatchSizeRatio float32        `db:"smallest_catch_size_ratio"`
	LargestCatchSizeRatio  float32        `db:"largest_catch_size_ratio"`
	LastCatch              string         `db:"last_catch"`
	FirstSell              sql.NullString `db:"first_sell"`
	LastSell               sql.NullString `db:"last_sell"`
}

func (r historyRow) toEntry() (history.Entry, error) {
	lastCatch, err := time.Parse(time.RFC3339Nano, r.LastCatch)
	if err != nil {
		return history.Entry{}, err
	}
	e := history.Entry{
		ID:                     r.ID,
		UserID:                 r.UserID,
		SpeciesID:              content.SpeciesID(r.SpeciesID),
		CaughtCount:            r.CaughtCount,
		SoldCount:              r.SoldCount,
		SmallestCatchSizeRatio: r.SmallestCatchSizeRatio,
		LargestCatchSizeRatio:  r.LargestCatchSizeRatio,
		LastCatch:              lastCatch,
	}
	if r.FirstSell.Valid {
		t, err := time.Parse(time.RFC3339Nano, r.FirstSell.String)
		if err != nil {
			return history.Entry{}, err
		}
		e.FirstSell = &t
	}
	if r.LastSell.Valid {
		t, err := time.Parse(time.RFC3339Nano, r.LastSell.String)
		if err != nil {
			return history.Entry{}, err
		}
		e.LastSell = &t
	}
	return e, nil
}

func nullableTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339Nano), Valid: true}
}

func (s *historyStore) FindByUserAndSpecies(ctx context.Context, userID int64, speciesID content.SpeciesID) (*history.Entry, error) {
	var row historyRow
	err := s.db.conn.GetContext(ctx, &row,
		`SELECT id, user_id, species_id, caught_count, sold_count, smallest_catch_size_ratio, largest_catch_size_ratio, last_catch, first_sell, last_sell
		 FROM fishing_history_entries WHERE user_id = ? AND species_id = ?`, userID, speciesID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err, "find fishing history entry")
	}
	e, err := row.toEntry()
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *historyStore) Create(ctx context.Context, e history.Entry) (history.Entry, error) {
	res, err := s.db.conn.ExecContext(ctx,
		`INSERT INTO fishing_history_entries (user_id, species_id, caught_count, sold_count, smallest_catch_size_ratio, largest_catch_size_ratio, last_catch, first_sell, last_sell)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.UserID, e.SpeciesID, e.CaughtCount, e.SoldCount, e.SmallestCatchSizeRatio, e.LargestCatchSizeRatio,
		e.LastCatch.Format(time.RFC3339Nano), nullableTime(e.FirstSell), nullableTime(e.LastSell))
	if err != nil {
		return history.Entry{}, translate(err, "create fishing history entry")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return history.Entry{}, gameerr.DatabaseOther(err)
	}
	e.ID = id
	return e, nil
}

func (s *historyStore) Save(ctx context.Context, e history.Entry) (history.Entry, error) {
	res, err := s.db.conn.ExecContext(ctx,
		`UPDATE fishing_history_entries SET caught_count = ?, sold_count = ?, smallest_catch_size_ratio = ?, largest_catch_size_ratio = ?, last_catch = ?, first_sell = ?, last_sell = ?
		 WHERE id = ?`,
		e.CaughtCount, e.SoldCount, e.SmallestCatchSizeRatio, e.LargestCatchSizeRatio,
		e.LastCatch.Format(time.RFC3339Nano), nullableTime(e.FirstSell), nullableTime(e.LastSell), e.ID)
	if err != nil {
		return history.Entry{}, translate(err, "save fishing history entry")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return history.Entry{}, gameerr.DatabaseOther(err)
	}
	if n == 0 {
		return history.Entry{}, gameerr.DatabaseNotFound("fishing history entry not found")
	}
	return e, nil
}

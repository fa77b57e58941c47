package sqlstore

import (
	"context"
	"time"

	"github.com/talgya/fishgame-core/content"
	"github.com/talgya/fishgame-core/unlock"
)

type unlockStore struct {
	db *DB
}

func (s *unlockStore) UnlockedLocations(ctx context.Context, userID int64) ([]content.LocationID, error) {
	var ids []int32
	err := s.db.conn.SelectContext(ctx, &ids, `SELECT location_id FROM user_locations WHERE user_id = ?`, userID)
	if err != nil {
		return nil, translate(err, "find unlocked locations")
	}
	out := make([]content.LocationID, len(ids))
	for i, id := range ids {
		out[i] = content.LocationID(id)
	}
	return out, nil
}

func (s *unlockStore) CaughtSpecies(ctx context.Context, userID int64) ([]content.SpeciesID, error) {
	var ids []int32
	err := s.db.conn.SelectContext(ctx, &ids,
		`SELECT DISTINCT species_id FROM fishing_history_entries WHERE user_id = ? AND caught_count > 0`, userID)
	if err != nil {
		return nil, translate(err, "find caught species")
	}
	out := make([]content.SpeciesID, len(ids))
	for i, id := range ids {
		out[i] = content.SpeciesID(id)
	}
	return out, nil
}

func (s *unlockStore) InsertUnlock(ctx context.Context, r unlock.Record) error {
	_, err := s.db.conn.ExecContext(ctx,
		`INSERT INTO user_locations (user_id, location_id, unlocked_at) VALUES (?, ?, ?)`,
		r.UserID, r.LocationID, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return translate(err, "insert unlock")
	}
	return nil
}

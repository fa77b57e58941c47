package sqlstore

import (
	"context"
	"time"

	"github.com/talgya/fishgame-core/content"
	"github.com/talgya/fishgame-core/gameerr"
	"github.com/talgya/fishgame-core/specimen"
)

type specimenStore struct {
	db *DB
}

type specimenRow struct {
	ID                int64   `db:"id"`
	UserID            int64   `db:"user_id"`
	SpeciesID         int32   `db:"species_id"`
	SizeBabyRatio     float32 `db:"size_baby_ratio"`
	SizeAdultRatio    float32 `db:"size_adult_ratio"`
	LifespanDaysRatio float32 `db:"lifespan_days_ratio"`
	CatchAge          float32 `db:"catch_age"`
	CreatedAt         string  `db:"created_at"`
	UpdatedAt         string  `db:"updated_at"`
}

func (r specimenRow) toSpecimen() (specimen.Specimen, error) {
	created, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return specimen.Specimen{}, err
	}
	updated, err := time.Parse(time.RFC3339Nano, r.UpdatedAt)
	if err != nil {
		return specimen.Specimen{}, err
	}
	return specimen.Specimen{
		ID:                r.ID,
		UserID:            r.UserID,
		SpeciesID:         content.SpeciesID(r.SpeciesID),
		SizeBabyRatio:     r.SizeBabyRatio,
		SizeAdultRatio:    r.SizeAdultRatio,
		LifespanDaysRatio: r.LifespanDaysRatio,
		CatchAge:          r.CatchAge,
		CreatedAt:         created,
		UpdatedAt:         updated,
	}, nil
}

func (s *specimenStore) Create(ctx context.Context, sp specimen.Specimen) (specimen.Specimen, error) {
	created := sp.CreatedAt.Format(time.RFC3339Nano)
	updated := sp.UpdatedAt.Format(time.RFC3339Nano)
	res, err := s.db.conn.ExecContext(ctx,
		`INSERT INTO specimens (user_id, species_id, size_baby_ratio, size_adult_ratio, lifespan_days_ratio, catch_age, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sp.UserID, sp.SpeciesID, sp.SizeBabyRatio, sp.SizeAdultRatio, sp.LifespanDaysRatio, sp.CatchAge, created, updated)
	if err != nil {
		return specimen.Specimen{}, translate(err, "create specimen")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return specimen.Specimen{}, gameerr.DatabaseOther(err)
	}
	sp.ID = id
	return sp, nil
}

func (s *specimenStore) FindByUser(ctx context.Context, userID int64) ([]specimen.Specimen, error) {
	var rows []specimenRow
	err := s.db.conn.SelectContext(ctx, &rows,
		`SELECT id, user_id, species_id, size_baby_ratio, size_adult_ratio, lifespan_days_ratio, catch_age, created_at, updated_at
		 FROM specimens WHERE user_id = ?`, userID)
	if err != nil {
		return nil, translate(err, "find specimens")
	}

	out := make([]specimen.Specimen, 0, len(rows))
	for _, r := range rows {
		sp, err := r.toSpecimen()
		if err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, nil
}

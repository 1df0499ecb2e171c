package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/minyanfinder/backend/internal/model"
)

func (s *pgStore) CreateBroadcast(b *model.Broadcast) error {
	_, err := s.db.Exec(`
		INSERT INTO broadcasts (id, latitude, longitude, minyan_type, earliest_time, latest_time, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		`, b.ID, b.Latitude, b.Longitude, b.MinyanType, b.EarliestTime, b.LatestTime, b.Active)
	if err != nil {
		log.Error().Err(err).Msg("failed to create broadcast")
	}
	return err
}

func (s *pgStore) GetBroadcastByID(id string) (model.Broadcast, error) {
	var b model.Broadcast
	err := s.db.Get(&b, `
		SELECT id, latitude, longitude, minyan_type, earliest_time, latest_time, active, created_at, updated_at
		FROM broadcasts
		WHERE id = $1
		`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Broadcast{}, ErrNotFound
	}
	return b, err
}

func (s *pgStore) UpdateBroadcast(b *model.Broadcast) error {
	_, err := s.db.Exec(`
		UPDATE broadcasts
		SET latitude = $2,
		longitude = $3,
		earliest_time = $4,
		latest_time = $5,
		active = $6,
		updated_at = now()
		WHERE id = $1
		`, b.ID, b.Latitude, b.Longitude, b.EarliestTime, b.LatestTime, b.Active)
	if err != nil {
		log.Error().Err(err).Msg("failed to update broadcast")
	}
	return err
}

func (s *pgStore) DeleteBroadcast(id string) error {
	res, err := s.db.Exec(`DELETE FROM broadcasts WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete broadcast")
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) ListActiveBroadcasts(minyanType *string) ([]model.Broadcast, error) {
	var broadcasts []model.Broadcast
	if minyanType != nil {
		err := s.db.Select(&broadcasts, `
			SELECT id, latitude, longitude, minyan_type, earliest_time, latest_time, active, created_at, updated_at
			FROM broadcasts
			WHERE active = true AND minyan_type = $1
			ORDER BY created_at
			`, *minyanType)
		return broadcasts, err
	}
	err := s.db.Select(&broadcasts, `
		SELECT id, latitude, longitude, minyan_type, earliest_time, latest_time, active, created_at, updated_at
		FROM broadcasts
		WHERE active = true
		ORDER BY created_at
		`)
	return broadcasts, err
}

package db

import (
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/minyanfinder/backend/internal/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store exposes the persistence operations the broadcast service needs.
type Store interface {
	CreateBroadcast(b *model.Broadcast) error
	GetBroadcastByID(id string) (model.Broadcast, error)
	UpdateBroadcast(b *model.Broadcast) error
	DeleteBroadcast(id string) error
	ListActiveBroadcasts(minyanType *string) ([]model.Broadcast, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

// NewStore returns the PostgreSQL-backed Store.
func NewStore(conn *sqlx.DB) Store {
	return &pgStore{db: conn}
}

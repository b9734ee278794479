package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrHomeyNotFound = errors.New("homey config not found")

// Homey represents the connection settings for one Homey.
type Homey struct {
	ID        int64
	ProfileID int64
	BaseURL   string
	Token     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HomeyStore provides Homey connection config CRUD operations.
type HomeyStore interface {
	Get(ctx context.Context, profileID int64) (*Homey, error)
	Create(ctx context.Context, h *Homey) error
	Update(ctx context.Context, h *Homey) error
	Delete(ctx context.Context, profileID int64) error
}

// Homeys returns a HomeyStore for this database.
func (db *DB) Homeys() HomeyStore {
	return &homeyStore{db: db}
}

type homeyStore struct {
	db *DB
}

func (s *homeyStore) Get(ctx context.Context, profileID int64) (*Homey, error) {
	h := &Homey{}
	var createdAt, updatedAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, profile_id, base_url, token, created_at, updated_at
		FROM homeys WHERE profile_id = ?
	`, profileID).Scan(&h.ID, &h.ProfileID, &h.BaseURL, &h.Token, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrHomeyNotFound
	}
	if err != nil {
		return nil, err
	}
	h.CreatedAt, _ = time.Parse(time.DateTime, createdAt)
	h.UpdatedAt, _ = time.Parse(time.DateTime, updatedAt)
	return h, nil
}

func (s *homeyStore) Create(ctx context.Context, h *Homey) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO homeys (profile_id, base_url, token)
		VALUES (?, ?, ?)
	`, h.ProfileID, h.BaseURL, h.Token)
	if err != nil {
		return fmt.Errorf("failed to create Homey config: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = id
	return nil
}

func (s *homeyStore) Update(ctx context.Context, h *Homey) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE homeys SET base_url = ?, token = ?, updated_at = datetime('now')
		WHERE profile_id = ?
	`, h.BaseURL, h.Token, h.ProfileID)
	return err
}

func (s *homeyStore) Delete(ctx context.Context, profileID int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM homeys WHERE profile_id = ?`, profileID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrHomeyNotFound
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/yuanfen"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var (
	// ErrProfileNotFound is returned when no profile matches an ID or name.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when a profile name is already taken.
	ErrDuplicateProfile = errors.New("profile already exists")
)

// Profile is a named person with a birth date.
type Profile struct {
	ID             string `db:"id" json:"id" yaml:"id"`
	Name           string `db:"name" json:"name" yaml:"name"`
	bazi.BirthData `yaml:",inline"`
	Note           string `db:"note" json:"note,omitempty" yaml:"note,omitempty"`
	CreatedAt      int64  `db:"created_at" json:"created_at" yaml:"created_at"` // unix seconds
}

// Created returns the creation time.
func (p Profile) Created() time.Time { return time.Unix(p.CreatedAt, 0) }

// Candidate converts the profile for ranking.
func (p Profile) Candidate() yuanfen.Candidate {
	return yuanfen.Candidate{ID: p.ID, Name: p.Name, Birth: p.BirthData}
}

// Add validates and inserts a new profile, filling in ID and CreatedAt.
func (db *DB) Add(ctx context.Context, name string, birth bazi.BirthData, note string) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("profile name must not be empty")
	}
	if err := birth.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", name, err)
	}

	p := &Profile{
		ID:        uuid.NewString(),
		Name:      name,
		BirthData: birth,
		Note:      note,
		CreatedAt: time.Now().Unix(),
	}

	_, err := db.conn.NamedExecContext(ctx, `INSERT INTO profiles
		(id, name, year, month, day, hour, note, created_at)
		VALUES (:id, :name, :year, :month, :day, :hour, :note, :created_at)`, p)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProfile, name)
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	log.Debug().Str("profile", name).Str("id", p.ID).Msg("profile added")
	return p, nil
}

// Get returns the profile whose ID or name is ref.
func (db *DB) Get(ctx context.Context, ref string) (*Profile, error) {
	var p Profile
	err := db.conn.GetContext(ctx, &p,
		`SELECT id, name, year, month, day, hour, note, created_at
		 FROM profiles WHERE id = ? OR name = ? LIMIT 1`, ref, ref)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, ref)
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// List returns all profiles ordered by name.
func (db *DB) List(ctx context.Context) ([]Profile, error) {
	var profiles []Profile
	if err := db.conn.SelectContext(ctx, &profiles,
		`SELECT id, name, year, month, day, hour, note, created_at
		 FROM profiles ORDER BY name`); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// ListByYears returns the profiles born in any of the given Gregorian years.
func (db *DB) ListByYears(ctx context.Context, years ...int) ([]Profile, error) {
	if len(years) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`SELECT id, name, year, month, day, hour, note, created_at
		FROM profiles WHERE year IN (?) ORDER BY name`, years)
	if err != nil {
		return nil, fmt.Errorf("list profiles by year: %w", err)
	}
	var profiles []Profile
	if err := db.conn.SelectContext(ctx, &profiles, db.conn.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list profiles by year: %w", err)
	}
	return profiles, nil
}

// Delete removes the profile whose ID or name is ref.
func (db *DB) Delete(ctx context.Context, ref string) error {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM profiles WHERE id = ? OR name = ?`, ref, ref)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, ref)
	}
	log.Debug().Str("profile", ref).Msg("profile deleted")
	return nil
}

// Count returns the number of stored profiles.
func (db *DB) Count(ctx context.Context) (int, error) {
	var n int
	if err := db.conn.GetContext(ctx, &n, `SELECT COUNT(*) FROM profiles`); err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}
	return n, nil
}

// Candidates returns every profile except the one named exclude, ready for
// ranking.
func (db *DB) Candidates(ctx context.Context, exclude string) ([]yuanfen.Candidate, error) {
	profiles, err := db.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]yuanfen.Candidate, 0, len(profiles))
	for _, p := range profiles {
		if p.Name == exclude {
			continue
		}
		out = append(out, p.Candidate())
	}
	return out, nil
}

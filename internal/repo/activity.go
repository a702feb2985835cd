// Package repo contains all database access logic for the trip companion.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-companion/internal/domain"
	"github.com/pkordes/trip-companion/internal/geo"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ActivityRepo defines the persistence operations for itinerary Activities.
// The itinerary is append-only apart from the completion flag: there is no
// Update or Delete.
type ActivityRepo interface {
	// Create inserts a new activity and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, act domain.Activity) (domain.Activity, error)

	// GetByID retrieves a single activity by its UUID primary key.
	// Returns domain.ErrNotFound if no activity with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error)

	// List returns all activities in itinerary order (position, then start_time).
	List(ctx context.Context) ([]domain.Activity, error)

	// ToggleCompleted flips the completed flag in a single statement and
	// returns the updated record. Returns domain.ErrNotFound if it does not exist.
	ToggleCompleted(ctx context.Context, id uuid.UUID) (domain.Activity, error)
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `
	id, position, title, description, key_details, type, location_name,
	end_location_name, start_time, end_time, lat, lng, end_lat, end_lng,
	price_eur, price_nok, completed, notes, created_at, updated_at`

// Create inserts a new activity row and returns the full persisted record.
func (r *pgActivityRepo) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	q := `
		INSERT INTO activities (
			position, title, description, key_details, type, location_name,
			end_location_name, start_time, end_time, lat, lng, end_lat, end_lng,
			price_eur, price_nok, completed, notes)
		VALUES (
			@position, @title, @description, @key_details, @type, @location_name,
			@end_location_name, @start_time, @end_time, @lat, @lng, @end_lat, @end_lng,
			@price_eur, @price_nok, @completed, @notes)
		RETURNING` + activityColumns

	args := pgx.NamedArgs{
		"position":          act.Position,
		"title":             act.Title,
		"description":       act.Description,
		"key_details":       act.KeyDetails,
		"type":              string(act.Type),
		"location_name":     act.LocationName,
		"end_location_name": act.EndLocationName,
		"start_time":        act.StartTime,
		"end_time":          act.EndTime,
		"lat":               act.Coords.Latitude,
		"lng":               act.Coords.Longitude,
		"end_lat":           nil, // NULL unless the activity has a route
		"end_lng":           nil,
		"price_eur":         act.PriceEUR,
		"price_nok":         act.PriceNOK,
		"completed":         act.Completed,
		"notes":             act.Notes,
	}
	if act.EndCoords != nil {
		args["end_lat"] = act.EndCoords.Latitude
		args["end_lng"] = act.EndCoords.Longitude
	}

	result, err := scanActivity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves an activity by primary key.
func (r *pgActivityRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	q := `SELECT` + activityColumns + `
		FROM activities
		WHERE id = @id`

	result, err := scanActivity(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns every activity in itinerary order.
func (r *pgActivityRepo) List(ctx context.Context) ([]domain.Activity, error) {
	q := `SELECT` + activityColumns + `
		FROM activities
		ORDER BY position, start_time, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.List: %w", err)
	}
	defer rows.Close()

	var acts []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.List: scan: %w", err)
		}
		acts = append(acts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.List: rows: %w", err)
	}

	return acts, nil
}

// ToggleCompleted flips completed and bumps updated_at. Concurrent toggles
// serialize on the row lock, so two taps always cancel out.
func (r *pgActivityRepo) ToggleCompleted(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	q := `
		UPDATE activities
		SET completed  = NOT completed,
		    updated_at = now()
		WHERE id = @id
		RETURNING` + activityColumns

	result, err := scanActivity(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.ToggleCompleted: %w", err)
	}
	return result, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanActivity maps a single database row into a domain.Activity.
// It handles the UUID and the nullable end coordinate conversions.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a      domain.Activity
		id     pgtype.UUID
		typ    string
		endLat pgtype.Float8
		endLng pgtype.Float8
	)

	err := s.Scan(
		&id, &a.Position, &a.Title, &a.Description, &a.KeyDetails, &typ, &a.LocationName,
		&a.EndLocationName, &a.StartTime, &a.EndTime, &a.Coords.Latitude, &a.Coords.Longitude,
		&endLat, &endLng, &a.PriceEUR, &a.PriceNOK, &a.Completed, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.Type = domain.ActivityType(typ)
	if endLat.Valid && endLng.Valid {
		a.EndCoords = &geo.Coordinates{Latitude: endLat.Float64, Longitude: endLng.Float64}
	}
	return a, nil
}

package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"WANDERINDIA_BACK-END/internal/models"
	"WANDERINDIA_BACK-END/internal/store"
)

// TripStore is the pgx-backed implementation of store.TripStore
type TripStore struct {
	db *pgxpool.Pool
}

// NewTripStore creates a new TripStore on the given pool
func NewTripStore(db *pgxpool.Pool) *TripStore {
	return &TripStore{db: db}
}

const tripColumns = `id, user_id, destination_id, title, description, start_date, end_date,
       duration_days, daily_budget, total_budget, travel_type, interests, status, created_at, updated_at`

func scanTrip(row pgx.Row, t *models.Trip) error {
	return row.Scan(
		&t.ID, &t.UserID, &t.DestinationID, &t.Title, &t.Description, &t.StartDate, &t.EndDate,
		&t.DurationDays, &t.DailyBudget, &t.TotalBudget, &t.TravelType, &t.Interests, &t.Status,
		&t.CreatedAt, &t.UpdatedAt,
	)
}

// CreateTrip inserts a new trip row
func (s *TripStore) CreateTrip(ctx context.Context, t *models.Trip) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO trips (id, user_id, destination_id, title, description, start_date, end_date,
                    duration_days, daily_budget, total_budget, travel_type, interests, status, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		t.ID, t.UserID, t.DestinationID, t.Title, t.Description, t.StartDate, t.EndDate,
		t.DurationDays, t.DailyBudget, t.TotalBudget, t.TravelType, t.Interests, t.Status,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// UpdateTrip persists a mutation of an existing trip
func (s *TripStore) UpdateTrip(ctx context.Context, t *models.Trip) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE trips
            SET title = $1,
                description = $2,
                start_date = $3,
                end_date = $4,
                duration_days = $5,
                daily_budget = $6,
                total_budget = $7,
                travel_type = $8,
                interests = $9,
                status = $10,
                updated_at = $11
          WHERE id = $12`,
		t.Title, t.Description, t.StartDate, t.EndDate, t.DurationDays, t.DailyBudget,
		t.TotalBudget, t.TravelType, t.Interests, t.Status, t.UpdatedAt, t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip %s: %w", t.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// GetTrip loads a trip by id
func (s *TripStore) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	var t models.Trip
	row := s.db.QueryRow(ctx, `SELECT `+tripColumns+` FROM trips WHERE id = $1`, id)
	if err := scanTrip(row, &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load trip %s: %w", id, err)
	}
	return &t, nil
}

// ListTripsByUser returns the user's trips newest first with a total count
func (s *TripStore) ListTripsByUser(ctx context.Context, userID uuid.UUID, status string, limit, offset int) ([]models.Trip, int, error) {
	var total int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(1) FROM trips WHERE user_id = $1 AND ($2 = 'all' OR status = $2)`,
		userID, status).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT `+tripColumns+`
           FROM trips
          WHERE user_id = $1 AND ($2 = 'all' OR status = $2)
          ORDER BY created_at DESC
          LIMIT $3 OFFSET $4`,
		userID, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	trips := make([]models.Trip, 0, limit)
	for rows.Next() {
		var t models.Trip
		if err := scanTrip(rows, &t); err != nil {
			return nil, 0, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, total, nil
}

// DeleteTrip removes a trip; trip_days go with it via ON DELETE CASCADE
func (s *TripStore) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trip %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// CreateTripDays inserts itinerary days one by one in slice order so that
// day rows are created in strictly increasing day_number order
func (s *TripStore) CreateTripDays(ctx context.Context, days []models.TripDay) error {
	if len(days) == 0 {
		return nil
	}
	for _, d := range days {
		_, err := s.db.Exec(ctx,
			`INSERT INTO trip_days (id, trip_id, day_number, title, description, activities)
             VALUES ($1, $2, $3, $4, $5, $6)`,
			d.ID, d.TripID, d.DayNumber, d.Title, d.Description, d.Activities,
		)
		if err != nil {
			return fmt.Errorf("failed to create day %d for trip %s: %w", d.DayNumber, d.TripID, err)
		}
	}
	return nil
}

// ListTripDays returns a trip's days ordered by day_number
func (s *TripStore) ListTripDays(ctx context.Context, tripID uuid.UUID) ([]models.TripDay, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, trip_id, day_number, title, description, activities
           FROM trip_days
          WHERE trip_id = $1
          ORDER BY day_number ASC, id ASC`, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list days for trip %s: %w", tripID, err)
	}
	defer rows.Close()

	days := make([]models.TripDay, 0)
	for rows.Next() {
		var d models.TripDay
		if err := rows.Scan(&d.ID, &d.TripID, &d.DayNumber, &d.Title, &d.Description, &d.Activities); err != nil {
			return nil, fmt.Errorf("failed to scan trip day: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list days for trip %s: %w", tripID, err)
	}
	return days, nil
}

// DeleteTripDays removes all days belonging to a trip
func (s *TripStore) DeleteTripDays(ctx context.Context, tripID uuid.UUID) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM trip_days WHERE trip_id = $1`, tripID); err != nil {
		return fmt.Errorf("failed to delete days for trip %s: %w", tripID, err)
	}
	return nil
}

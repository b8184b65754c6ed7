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

// DestinationStore is the pgx-backed implementation of store.DestinationStore
type DestinationStore struct {
	db *pgxpool.Pool
}

// NewDestinationStore creates a new DestinationStore on the given pool
func NewDestinationStore(db *pgxpool.Pool) *DestinationStore {
	return &DestinationStore{db: db}
}

const destinationColumns = `id, name, tagline, description, type, budget, best_time, bad_time,
       image_url, languages, stay_cost, food_cost, transport_cost, activities_cost, created_at, updated_at`

func scanDestination(row pgx.Row, d *models.Destination) error {
	return row.Scan(
		&d.ID, &d.Name, &d.Tagline, &d.Description, &d.Type, &d.Budget, &d.BestTime, &d.BadTime,
		&d.ImageURL, &d.Languages, &d.StayCost, &d.FoodCost, &d.TransportCost, &d.ActivitiesCost,
		&d.CreatedAt, &d.UpdatedAt,
	)
}

// GetDestination loads a destination by id
func (s *DestinationStore) GetDestination(ctx context.Context, id uuid.UUID) (*models.Destination, error) {
	var d models.Destination
	row := s.db.QueryRow(ctx, `SELECT `+destinationColumns+` FROM destinations WHERE id = $1`, id)
	if err := scanDestination(row, &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load destination %s: %w", id, err)
	}
	return &d, nil
}

// ListDestinations returns all destinations ordered by name
func (s *DestinationStore) ListDestinations(ctx context.Context) ([]models.Destination, error) {
	rows, err := s.db.Query(ctx, `SELECT `+destinationColumns+` FROM destinations ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	defer rows.Close()

	destinations := make([]models.Destination, 0)
	for rows.Next() {
		var d models.Destination
		if err := scanDestination(rows, &d); err != nil {
			return nil, fmt.Errorf("failed to scan destination: %w", err)
		}
		destinations = append(destinations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	return destinations, nil
}

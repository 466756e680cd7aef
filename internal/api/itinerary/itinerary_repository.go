package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wanderplan/go-travel-planner/internal/types"
)

var _ Repository = (*PostgresItineraryRepository)(nil)

// Repository defines the persistence contract for saved itineraries.
type Repository interface {
	SaveItinerary(ctx context.Context, req types.SaveItineraryRequest) (uuid.UUID, error)
	GetItinerary(ctx context.Context, id uuid.UUID) (*types.SavedItinerary, error)
	GetItineraries(ctx context.Context) ([]types.SavedItinerary, error)
	DeleteItinerary(ctx context.Context, id uuid.UUID) error
}

// PGXPool is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type PGXPool interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type PostgresItineraryRepository struct {
	logger *slog.Logger
	pgpool PGXPool
}

func NewItineraryRepository(pgpool PGXPool, logger *slog.Logger) *PostgresItineraryRepository {
	return &PostgresItineraryRepository{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *PostgresItineraryRepository) SaveItinerary(ctx context.Context, req types.SaveItineraryRequest) (uuid.UUID, error) {
	payload, err := json.Marshal(req.Payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal itinerary payload: %w", err)
	}

	tx, err := r.pgpool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO saved_itineraries (
            title, destination, payload
        ) VALUES ($1, $2, $3) RETURNING id
    `
	var id uuid.UUID
	if err = tx.QueryRow(ctx, query, req.Title, req.Destination, payload).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert itinerary: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

func (r *PostgresItineraryRepository) GetItinerary(ctx context.Context, id uuid.UUID) (*types.SavedItinerary, error) {
	query := `
        SELECT id, title, destination, payload, created_at, updated_at
        FROM saved_itineraries
        WHERE id = $1
    `
	var saved types.SavedItinerary
	var payload []byte
	if err := r.pgpool.QueryRow(ctx, query, id).Scan(
		&saved.ID, &saved.Title, &saved.Destination, &payload, &saved.CreatedAt, &saved.UpdatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find itinerary: %w", err)
	}
	if err := json.Unmarshal(payload, &saved.Payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal itinerary payload: %w", err)
	}
	return &saved, nil
}

func (r *PostgresItineraryRepository) GetItineraries(ctx context.Context) ([]types.SavedItinerary, error) {
	query := `
        SELECT id, title, destination, payload, created_at, updated_at
        FROM saved_itineraries
        ORDER BY created_at DESC
    `
	rows, err := r.pgpool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query itineraries: %w", err)
	}
	defer rows.Close()

	var out []types.SavedItinerary
	for rows.Next() {
		var saved types.SavedItinerary
		var payload []byte
		if err := rows.Scan(&saved.ID, &saved.Title, &saved.Destination, &payload, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan itinerary row: %w", err)
		}
		if err := json.Unmarshal(payload, &saved.Payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal itinerary payload: %w", err)
		}
		out = append(out, saved)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate itineraries: %w", err)
	}
	return out, nil
}

func (r *PostgresItineraryRepository) DeleteItinerary(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pgpool.Exec(ctx, `DELETE FROM saved_itineraries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete itinerary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return types.ErrSavedItineraryMissing
	}
	return nil
}

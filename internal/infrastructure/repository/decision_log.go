package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/priit2000/out-of-android/internal/infrastructure/config"
)

// Decision is one recorded screening outcome
type Decision struct {
	ID        uuid.UUID `json:"id"`
	CallID    uuid.UUID `json:"call_id"`
	Number    string    `json:"number,omitempty"`
	Action    string    `json:"action"`
	Reason    string    `json:"reason"`
	Message   string    `json:"message,omitempty"`
	DecidedAt time.Time `json:"decided_at"`
}

// decisionLogRepository persists screening decisions to PostgreSQL
type decisionLogRepository struct {
	pool *pgxpool.Pool
}

// NewPool creates a pgx connection pool from the database configuration
func NewPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing database url: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	return pool, nil
}

// NewDecisionLogRepository creates a decision log repository on the given pool
func NewDecisionLogRepository(pool *pgxpool.Pool) *decisionLogRepository {
	return &decisionLogRepository{pool: pool}
}

// EnsureSchema creates the decision log table if it does not exist
func (r *decisionLogRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS screening_decisions (
			id         UUID PRIMARY KEY,
			call_id    UUID NOT NULL,
			number     TEXT NOT NULL DEFAULT '',
			action     TEXT NOT NULL,
			reason     TEXT NOT NULL,
			message    TEXT NOT NULL DEFAULT '',
			decided_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("creating screening_decisions table: %w", err)
	}
	return nil
}

// Record inserts a screening decision
func (r *decisionLogRepository) Record(ctx context.Context, d Decision) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.DecidedAt.IsZero() {
		d.DecidedAt = time.Now()
	}

	query := `
		INSERT INTO screening_decisions (
			id, call_id, number, action, reason, message, decided_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		d.ID, d.CallID, d.Number, d.Action, d.Reason, d.Message, d.DecidedAt)
	if err != nil {
		// Re-recording the same decision is a no-op, not a failure
		if IsDuplicateKeyViolation(err) {
			return nil
		}
		return fmt.Errorf("inserting screening decision: %w", err)
	}
	return nil
}

// GetByCallID returns the decision recorded for one call
func (r *decisionLogRepository) GetByCallID(ctx context.Context, callID uuid.UUID) (Decision, error) {
	query := `
		SELECT id, call_id, number, action, reason, message, decided_at
		FROM screening_decisions
		WHERE call_id = $1
		ORDER BY decided_at DESC
		LIMIT 1`

	var d Decision
	err := r.pool.QueryRow(ctx, query, callID).
		Scan(&d.ID, &d.CallID, &d.Number, &d.Action, &d.Reason, &d.Message, &d.DecidedAt)
	if err != nil {
		if IsNotFound(err) {
			return Decision{}, ErrNotFound
		}
		return Decision{}, fmt.Errorf("querying screening decision: %w", err)
	}
	return d, nil
}

// ListRecent returns up to limit decisions, newest first
func (r *decisionLogRepository) ListRecent(ctx context.Context, limit int) ([]Decision, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, call_id, number, action, reason, message, decided_at
		FROM screening_decisions
		ORDER BY decided_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying screening decisions: %w", err)
	}
	defer rows.Close()

	var out []Decision
	for rows.Next() {
		var d Decision
		if err := rows.Scan(&d.ID, &d.CallID, &d.Number, &d.Action, &d.Reason, &d.Message, &d.DecidedAt); err != nil {
			return nil, fmt.Errorf("scanning screening decision: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

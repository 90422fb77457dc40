package repository

import (
	"context"
	"errors"
	"fmt"

	"cinix-booking/internal/data/entity"
	"cinix-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const createClientStorageTable = `
	CREATE TABLE IF NOT EXISTS client_storage (
		storage_key TEXT PRIMARY KEY,
		value       JSONB NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type pgTicketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPostgresTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &pgTicketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket_postgres")),
	}
}

// EnsureClientStorage creates the key/value table used for ticket lists.
func EnsureClientStorage(ctx context.Context, db database.PgxIface) error {
	if _, err := db.Exec(ctx, createClientStorageTable); err != nil {
		return fmt.Errorf("create client_storage table: %w", err)
	}
	return nil
}

func (r *pgTicketRepository) FindByUser(ctx context.Context, userID string) ([]entity.Ticket, error) {
	query := `SELECT value FROM client_storage WHERE storage_key = $1`

	var raw []byte
	err := r.db.QueryRow(ctx, query, TicketKey(userID)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return []entity.Ticket{}, nil
	}
	if err != nil {
		r.log.Error("Failed to find tickets by user",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("failed to find tickets: %w", err)
	}

	return decodeTickets(raw)
}

func (r *pgTicketRepository) SaveForUser(ctx context.Context, userID string, tickets []entity.Ticket) error {
	raw, err := encodeTickets(tickets)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO client_storage (storage_key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (storage_key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, TicketKey(userID), raw); err != nil {
		r.log.Error("Failed to save tickets",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.Int("count", len(tickets)),
		)
		return fmt.Errorf("failed to save tickets: %w", err)
	}

	return nil
}

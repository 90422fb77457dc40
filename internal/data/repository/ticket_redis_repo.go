package repository

import (
	"context"
	"errors"
	"fmt"

	"cinix-booking/internal/data/entity"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisTicketRepository struct {
	rdb redis.Cmdable
	log *zap.Logger
}

func NewRedisTicketRepository(rdb redis.Cmdable, log *zap.Logger) TicketRepository {
	return &redisTicketRepository{
		rdb: rdb,
		log: log.With(zap.String("repository", "ticket_redis")),
	}
}

func (r *redisTicketRepository) FindByUser(ctx context.Context, userID string) ([]entity.Ticket, error) {
	raw, err := r.rdb.Get(ctx, TicketKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []entity.Ticket{}, nil
	}
	if err != nil {
		r.log.Error("Failed to read tickets",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("failed to read tickets: %w", err)
	}

	return decodeTickets(raw)
}

func (r *redisTicketRepository) SaveForUser(ctx context.Context, userID string, tickets []entity.Ticket) error {
	raw, err := encodeTickets(tickets)
	if err != nil {
		return err
	}

	// tanpa TTL, tiket tidak pernah dihapus otomatis
	if err := r.rdb.Set(ctx, TicketKey(userID), raw, 0).Err(); err != nil {
		r.log.Error("Failed to write tickets",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.Int("count", len(tickets)),
		)
		return fmt.Errorf("failed to write tickets: %w", err)
	}

	return nil
}

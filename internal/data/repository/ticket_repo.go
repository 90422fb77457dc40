package repository

import (
	"context"
	"sync"

	"cinix-booking/internal/data/entity"

	"go.uber.org/zap"
)

// TicketRepository is a per-user key/value store of ticket lists. The whole
// list is read and written at once, newest ticket first.
type TicketRepository interface {
	FindByUser(ctx context.Context, userID string) ([]entity.Ticket, error)
	SaveForUser(ctx context.Context, userID string, tickets []entity.Ticket) error
}

type memoryTicketRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
	log  *zap.Logger
}

// NewMemoryTicketRepository keeps encoded ticket lists in process memory.
func NewMemoryTicketRepository(log *zap.Logger) TicketRepository {
	return &memoryTicketRepository{
		data: make(map[string][]byte),
		log:  log.With(zap.String("repository", "ticket_memory")),
	}
}

func (r *memoryTicketRepository) FindByUser(_ context.Context, userID string) ([]entity.Ticket, error) {
	r.mu.RLock()
	raw := r.data[TicketKey(userID)]
	r.mu.RUnlock()

	tickets, err := decodeTickets(raw)
	if err != nil {
		r.log.Error("Failed to decode stored tickets", zap.Error(err), zap.String("user_id", userID))
		return nil, err
	}
	return tickets, nil
}

func (r *memoryTicketRepository) SaveForUser(_ context.Context, userID string, tickets []entity.Ticket) error {
	raw, err := encodeTickets(tickets)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.data[TicketKey(userID)] = raw
	r.mu.Unlock()
	return nil
}

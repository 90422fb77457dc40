package repository

import (
	"encoding/json"
	"fmt"

	"cinix-booking/internal/data/entity"
)

type Repository struct {
	Ticket TicketRepository
}

func NewRepository(ticket TicketRepository) *Repository {
	return &Repository{
		Ticket: ticket,
	}
}

// TicketKey is the per-user storage key, e.g. "tickets_u1".
func TicketKey(userID string) string {
	return "tickets_" + userID
}

func encodeTickets(tickets []entity.Ticket) ([]byte, error) {
	if tickets == nil {
		tickets = []entity.Ticket{}
	}
	data, err := json.Marshal(tickets)
	if err != nil {
		return nil, fmt.Errorf("encode tickets: %w", err)
	}
	return data, nil
}

func decodeTickets(data []byte) ([]entity.Ticket, error) {
	if len(data) == 0 {
		return []entity.Ticket{}, nil
	}
	var tickets []entity.Ticket
	if err := json.Unmarshal(data, &tickets); err != nil {
		return nil, fmt.Errorf("decode tickets: %w", err)
	}
	if tickets == nil {
		tickets = []entity.Ticket{}
	}
	return tickets, nil
}

package usecase

import (
	"context"
	"fmt"

	"cinix-booking/internal/data/repository"
	"cinix-booking/internal/domain"
	"cinix-booking/internal/dto/request"
	"cinix-booking/internal/dto/response"

	"go.uber.org/zap"
)

type TicketService interface {
	List(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error)
}

type ticketService struct {
	tickets repository.TicketRepository
	log     *zap.Logger
}

func NewTicketService(tickets repository.TicketRepository, log *zap.Logger) TicketService {
	return &ticketService{
		tickets: tickets,
		log:     log.With(zap.String("service", "ticket")),
	}
}

// List returns the user's tickets, newest first.
func (s *ticketService) List(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error) {
	if userID == "" {
		return nil, domain.ErrUserRequired
	}

	tickets, err := s.tickets.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list tickets",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	total := int64(len(tickets))
	start := min(max(req.Offset(), 0), len(tickets))
	end := min(start+req.Limit(), len(tickets))

	page := make([]response.TicketResponse, 0, end-start)
	for _, t := range tickets[start:end] {
		page = append(page, response.TicketToResponse(t))
	}

	return response.NewPaginatedResponse(page, req.Page, req.Limit(), total), nil
}

package usecase

import (
	"fmt"

	"cinix-booking/internal/clock"
	"cinix-booking/internal/data/repository"
	"cinix-booking/internal/domain"
	"cinix-booking/internal/event"
	"cinix-booking/pkg/utils"

	"go.uber.org/zap"
)

// Backend is the remote CINIX API as the use cases see it.
type Backend interface {
	domain.SeatFetcher
	domain.PaymentSubmitter
}

type Service struct {
	Booking  BookingService
	Checkout CheckoutService
	Ticket   TicketService
}

func NewService(
	repo *repository.Repository,
	backend Backend,
	publisher event.Publisher,
	config *utils.Config,
	clk clock.Clock,
	log *zap.Logger,
) *Service {
	return &Service{
		Booking:  NewBookingService(backend, config.Pricing, config.Session, clk, log),
		Checkout: NewCheckoutService(repo.Ticket, backend, publisher, config.Pricing, clk, log),
		Ticket:   NewTicketService(repo.Ticket, log),
	}
}

// validate runs struct validation and wraps failures in domain.ErrValidation.
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, utils.FormatValidationErrors(errs))
	}
	return nil
}

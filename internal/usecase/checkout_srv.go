package usecase

import (
	"context"
	"fmt"
	"sync"

	"cinix-booking/internal/clock"
	"cinix-booking/internal/data/entity"
	"cinix-booking/internal/data/repository"
	"cinix-booking/internal/domain"
	"cinix-booking/internal/dto/request"
	"cinix-booking/internal/dto/response"
	"cinix-booking/internal/event"
	"cinix-booking/pkg/metrics"
	"cinix-booking/pkg/utils"

	"go.uber.org/zap"
)

// PurchaseOutcome says whether a simulated purchase was written to storage.
// Without a user id the purchase still succeeds but Persisted is false.
type PurchaseOutcome struct {
	Ticket    entity.Ticket
	Persisted bool
}

type CheckoutService interface {
	PaymentMethods() []response.PaymentMethodResponse
	Summary(ctx context.Context, req *request.CheckoutRequest) (*response.CheckoutSummaryResponse, error)
	Pay(ctx context.Context, userID string, req *request.CheckoutRequest) (*response.PaymentRedirectResponse, error)
	Simulate(ctx context.Context, userID string, req *request.CheckoutRequest) (*PurchaseOutcome, error)
}

type checkoutService struct {
	tickets   repository.TicketRepository
	submitter domain.PaymentSubmitter
	publisher event.Publisher
	pricing   domain.Pricing
	clock     clock.Clock
	log       *zap.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewCheckoutService(
	tickets repository.TicketRepository,
	submitter domain.PaymentSubmitter,
	publisher event.Publisher,
	pricing utils.PricingConfig,
	clk clock.Clock,
	log *zap.Logger,
) CheckoutService {
	return &checkoutService{
		tickets:   tickets,
		submitter: submitter,
		publisher: publisher,
		pricing:   domain.Pricing{UnitPrice: pricing.TicketPrice, AdminFee: pricing.AdminFee},
		clock:     clk,
		log:       log.With(zap.String("service", "checkout")),
		inflight:  make(map[string]struct{}),
	}
}

func (s *checkoutService) PaymentMethods() []response.PaymentMethodResponse {
	return response.PaymentMethodsToResponse(entity.DefaultPaymentMethod)
}

func (s *checkoutService) Summary(_ context.Context, req *request.CheckoutRequest) (*response.CheckoutSummaryResponse, error) {
	if err := s.validateOrder(req); err != nil {
		return nil, err
	}

	method := req.PaymentMethod
	if method == "" {
		method = entity.DefaultPaymentMethod
	}

	quote := domain.NewQuote(s.pricing, req.TicketCount())
	return &response.CheckoutSummaryResponse{
		MovieTitle:     req.Movie.Title,
		PosterURL:      req.Movie.Poster(),
		Cinema:         req.Cinema,
		Showtime:       req.Showtime,
		Seats:          req.Seats,
		Quantity:       quote.Quantity,
		Quote:          response.QuoteToResponse(quote),
		PaymentMethods: response.PaymentMethodsToResponse(method),
	}, nil
}

// Pay posts the checkout total, admin fee included, to the payment endpoint.
func (s *checkoutService) Pay(ctx context.Context, userID string, req *request.CheckoutRequest) (*response.PaymentRedirectResponse, error) {
	if err := s.validateOrder(req); err != nil {
		return nil, err
	}
	if req.Movie.ScheduleID == "" {
		s.log.Warn("Checkout without schedule id", zap.String("movie", req.Movie.Title))
		return nil, domain.ErrMissingSchedule
	}

	key := req.Movie.ScheduleID + "|" + userID
	if !s.begin(key) {
		return nil, domain.ErrSubmitInProgress
	}
	defer s.end(key)

	quote := domain.NewQuote(s.pricing, req.TicketCount())
	payload := entity.BookingPayload{
		ScheduleID: req.Movie.ScheduleID,
		Seats:      append([]string(nil), req.Seats...),
		UserID:     userID,
		Amount:     quote.Total,
	}

	redirectURL, err := s.submitter.SubmitPayment(ctx, payload)
	if err != nil {
		s.log.Error("Checkout payment failed",
			zap.Error(err),
			zap.String("schedule_id", payload.ScheduleID),
			zap.Int64("amount", payload.Amount),
		)
		return nil, err
	}

	s.log.Info("Checkout payment link obtained",
		zap.String("schedule_id", payload.ScheduleID),
		zap.String("payment_method", req.PaymentMethod),
		zap.Int64("amount", payload.Amount),
	)

	return &response.PaymentRedirectResponse{RedirectURL: redirectURL}, nil
}

// Simulate records a paid ticket for userID, newest first.
func (s *checkoutService) Simulate(ctx context.Context, userID string, req *request.CheckoutRequest) (*PurchaseOutcome, error) {
	if err := s.validateOrder(req); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	quote := domain.NewQuote(s.pricing, req.TicketCount())
	ticket := entity.Ticket{
		ID:          utils.GenerateUUIDString(),
		BookingCode: utils.GenerateOrderID(now),
		UserID:      userID,
		MovieTitle:  req.Movie.Title,
		PosterURL:   req.Movie.Poster(),
		Cinema:      req.Cinema,
		Showtime:    req.Showtime,
		Seats:       append([]string(nil), req.Seats...),
		Quantity:    quote.Quantity,
		TotalAmount: quote.Total,
		BookingDate: now,
		Status:      entity.TicketStatusPaid,
	}

	if userID == "" {
		s.log.Warn("No user identity, ticket not persisted",
			zap.String("ticket_id", ticket.ID),
			zap.String("movie", ticket.MovieTitle),
		)
		metrics.RecordTicket(false)
		return &PurchaseOutcome{Ticket: ticket, Persisted: false}, nil
	}

	existing, err := s.tickets.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load tickets for user %s: %w", userID, err)
	}

	updated := make([]entity.Ticket, 0, len(existing)+1)
	updated = append(updated, ticket)
	updated = append(updated, existing...)

	if err := s.tickets.SaveForUser(ctx, userID, updated); err != nil {
		return nil, fmt.Errorf("save tickets for user %s: %w", userID, err)
	}
	metrics.RecordTicket(true)

	// event gagal tidak membatalkan pembelian
	if err := s.publisher.PublishTicketPurchased(ctx, ticket); err != nil {
		s.log.Warn("Ticket event not published", zap.Error(err), zap.String("ticket_id", ticket.ID))
	}

	s.log.Info("Ticket recorded",
		zap.String("ticket_id", ticket.ID),
		zap.String("user_id", userID),
		zap.Int("seat_count", len(ticket.Seats)),
		zap.Int64("total_amount", ticket.TotalAmount),
		zap.Int("ticket_count", len(updated)),
	)

	return &PurchaseOutcome{Ticket: ticket, Persisted: true}, nil
}

func (s *checkoutService) validateOrder(req *request.CheckoutRequest) error {
	if err := validate(req); err != nil {
		s.log.Warn("Checkout validation failed", zap.Error(err))
		return err
	}
	if req.Quantity > 0 && req.Quantity != len(req.Seats) {
		return fmt.Errorf("%w: quantity %d does not match %d seats", domain.ErrValidation, req.Quantity, len(req.Seats))
	}
	return nil
}

func (s *checkoutService) begin(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inflight[key]; busy {
		return false
	}
	s.inflight[key] = struct{}{}
	return true
}

func (s *checkoutService) end(key string) {
	s.mu.Lock()
	delete(s.inflight, key)
	s.mu.Unlock()
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cinix-booking/internal/clock"
	"cinix-booking/internal/domain"
	"cinix-booking/internal/dto/request"
	"cinix-booking/internal/dto/response"
	"cinix-booking/pkg/metrics"
	"cinix-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// Read-only layout, no session needed
	GetSeatLayout(ctx context.Context, studioID string) (*response.SeatLayoutResponse, error)

	// Seat selection session
	OpenSession(ctx context.Context, req *request.OpenSessionRequest) (*response.BookingSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*response.BookingSessionResponse, error)
	ToggleSeat(ctx context.Context, sessionID, seatNumber string) (*response.BookingSessionResponse, error)
	ReloadSession(ctx context.Context, sessionID string, req *request.ReloadSessionRequest) (*response.BookingSessionResponse, error)
	SubmitSession(ctx context.Context, sessionID, userID string) (*response.PaymentRedirectResponse, error)
	CloseSession(ctx context.Context, sessionID string) error

	// Housekeeping
	PurgeIdleSessions() int
}

type bookingSession struct {
	model    *domain.Model
	lastSeen time.Time
}

type bookingService struct {
	backend Backend
	pricing domain.Pricing
	idle    time.Duration
	clock   clock.Clock
	log     *zap.Logger

	mu       sync.Mutex
	sessions map[string]*bookingSession
}

// NewBookingService serves the seat selection screen. The booking screen
// charges no admin fee; that only applies at checkout.
func NewBookingService(backend Backend, pricing utils.PricingConfig, session utils.SessionConfig, clk clock.Clock, log *zap.Logger) BookingService {
	return &bookingService{
		backend:  backend,
		pricing:  domain.Pricing{UnitPrice: pricing.TicketPrice},
		idle:     session.IdleTimeout,
		clock:    clk,
		log:      log.With(zap.String("service", "booking")),
		sessions: make(map[string]*bookingSession),
	}
}

func (s *bookingService) GetSeatLayout(ctx context.Context, studioID string) (*response.SeatLayoutResponse, error) {
	if studioID == "" {
		return nil, fmt.Errorf("%w: studio id is required", domain.ErrValidation)
	}

	seats, err := s.backend.FetchSeats(ctx, studioID)
	if err != nil {
		s.log.Error("Failed to get seat layout",
			zap.Error(err),
			zap.String("studio_id", studioID),
		)
		return nil, fmt.Errorf("get seat layout: %w", err)
	}

	layout := response.SeatLayoutToResponse(studioID, domain.GroupRows(seats))
	return &layout, nil
}

func (s *bookingService) OpenSession(ctx context.Context, req *request.OpenSessionRequest) (*response.BookingSessionResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Open session validation failed", zap.Error(err))
		return nil, err
	}

	model := domain.NewModel(s.backend, s.backend, s.pricing, s.log)
	if err := model.Load(ctx, req.StudioID); err != nil {
		return nil, fmt.Errorf("open booking session: %w", err)
	}

	sessionID := utils.GenerateUUIDString()

	s.mu.Lock()
	s.sessions[sessionID] = &bookingSession{model: model, lastSeen: s.clock.Now()}
	active := len(s.sessions)
	s.mu.Unlock()
	metrics.SetActiveSessions(active)

	s.log.Info("Booking session opened",
		zap.String("session_id", sessionID),
		zap.String("studio_id", req.StudioID),
	)

	resp := response.SessionToResponse(sessionID, model.Snapshot())
	return &resp, nil
}

func (s *bookingService) GetSession(_ context.Context, sessionID string) (*response.BookingSessionResponse, error) {
	model, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	resp := response.SessionToResponse(sessionID, model.Snapshot())
	return &resp, nil
}

func (s *bookingService) ToggleSeat(_ context.Context, sessionID, seatNumber string) (*response.BookingSessionResponse, error) {
	model, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	if !model.Toggle(seatNumber) {
		s.log.Debug("Ignored toggle on unavailable seat",
			zap.String("session_id", sessionID),
			zap.String("seat_number", seatNumber),
		)
	}

	resp := response.SessionToResponse(sessionID, model.Snapshot())
	return &resp, nil
}

func (s *bookingService) ReloadSession(ctx context.Context, sessionID string, req *request.ReloadSessionRequest) (*response.BookingSessionResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	model, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	studioID := req.StudioID
	if studioID == "" {
		studioID = model.StudioID()
	}

	if err := model.Load(ctx, studioID); err != nil {
		return nil, fmt.Errorf("reload session %s: %w", sessionID, err)
	}

	resp := response.SessionToResponse(sessionID, model.Snapshot())
	return &resp, nil
}

func (s *bookingService) SubmitSession(ctx context.Context, sessionID, userID string) (*response.PaymentRedirectResponse, error) {
	model, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	redirectURL, err := model.Submit(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrEmptySelection) && !errors.Is(err, domain.ErrSubmitInProgress) {
			s.log.Warn("Booking submission failed",
				zap.Error(err),
				zap.String("session_id", sessionID),
				zap.String("user_id", userID),
			)
		}
		return nil, err
	}

	s.log.Info("Booking submitted",
		zap.String("session_id", sessionID),
		zap.String("user_id", userID),
	)

	return &response.PaymentRedirectResponse{RedirectURL: redirectURL}, nil
}

func (s *bookingService) CloseSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	active := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return domain.ErrSessionNotFound
	}

	sess.model.Reset()
	metrics.SetActiveSessions(active)
	s.log.Info("Booking session closed", zap.String("session_id", sessionID))
	return nil
}

// PurgeIdleSessions drops sessions untouched for longer than the idle timeout.
func (s *bookingService) PurgeIdleSessions() int {
	if s.idle <= 0 {
		return 0
	}

	cutoff := s.clock.Now().Add(-s.idle)

	s.mu.Lock()
	var purged []*bookingSession
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			purged = append(purged, sess)
			delete(s.sessions, id)
		}
	}
	active := len(s.sessions)
	s.mu.Unlock()

	for _, sess := range purged {
		sess.model.Reset()
	}
	if len(purged) > 0 {
		metrics.SetActiveSessions(active)
		s.log.Info("Idle booking sessions purged", zap.Int("count", len(purged)))
	}

	return len(purged)
}

func (s *bookingService) session(sessionID string) (*domain.Model, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	sess.lastSeen = s.clock.Now()
	return sess.model, nil
}

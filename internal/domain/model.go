package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cinix-booking/internal/data/entity"

	"go.uber.org/zap"
)

// SeatFetcher loads a studio's seat layout from the backend.
type SeatFetcher interface {
	FetchSeats(ctx context.Context, studioID string) ([]entity.Seat, error)
}

// PaymentSubmitter sends a booking payload and returns the payment redirect URL.
type PaymentSubmitter interface {
	SubmitPayment(ctx context.Context, payload entity.BookingPayload) (string, error)
}

// Model is the seat-selection state of one booking screen.
type Model struct {
	fetcher   SeatFetcher
	submitter PaymentSubmitter
	pricing   Pricing
	log       *zap.Logger

	mu         sync.Mutex
	studioID   string
	seats      []entity.Seat
	rows       []Row
	selection  Selection
	submitting bool

	loadGen    uint64
	cancelLoad context.CancelFunc
}

// Snapshot is a read-only copy of the model for rendering.
type Snapshot struct {
	StudioID   string   `json:"studio_id"`
	Rows       []Row    `json:"rows"`
	Selected   []string `json:"selected_seats"`
	Quote      Quote    `json:"quote"`
	Submitting bool     `json:"submitting"`
}

func NewModel(fetcher SeatFetcher, submitter PaymentSubmitter, pricing Pricing, log *zap.Logger) *Model {
	return &Model{
		fetcher:   fetcher,
		submitter: submitter,
		pricing:   pricing,
		log:       log.With(zap.String("component", "seat_model")),
	}
}

// Load fetches the layout for studioID and replaces the seat list.
// On failure the previous studio, seats and selection stay. A newer Load
// cancels an older one still in flight; the older call then returns
// ErrStaleLoad. A successful switch to another studio clears the selection.
func (m *Model) Load(ctx context.Context, studioID string) error {
	m.mu.Lock()
	if m.cancelLoad != nil {
		m.cancelLoad()
	}
	ctx, cancel := context.WithCancel(ctx)
	m.loadGen++
	gen := m.loadGen
	m.cancelLoad = cancel
	m.mu.Unlock()

	seats, err := m.fetcher.FetchSeats(ctx, studioID)
	cancel()

	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.loadGen {
		m.log.Debug("Discarding superseded seat load", zap.String("studio_id", studioID))
		return ErrStaleLoad
	}
	m.cancelLoad = nil

	if err != nil {
		m.log.Error("Failed to fetch seats",
			zap.Error(err),
			zap.String("studio_id", studioID),
		)
		return fmt.Errorf("fetch seats for studio %s: %w", studioID, err)
	}

	if studioID != m.studioID {
		m.studioID = studioID
		m.selection.Clear()
	}
	m.seats = seats
	m.rows = GroupRows(seats)

	// kursi yang sudah tidak tersedia dibuang dari pilihan
	m.selection.retain(m.isAvailableLocked)

	m.log.Debug("Seats loaded",
		zap.String("studio_id", studioID),
		zap.Int("seat_count", len(seats)),
		zap.Int("row_count", len(m.rows)),
	)

	return nil
}

// Toggle flips the selection of an available seat and reports whether the
// selection changed. Unknown and unavailable seats are ignored.
func (m *Model) Toggle(seatNumber string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.isAvailableLocked(seatNumber) {
		return false
	}
	m.selection.Toggle(seatNumber)
	return true
}

func (m *Model) isAvailableLocked(seatNumber string) bool {
	for _, seat := range m.seats {
		if seat.SeatNumber == seatNumber {
			return seat.IsAvailable
		}
	}
	return false
}

// Submit sends the current selection to the payment endpoint and returns the
// redirect URL. Only one submission runs at a time; the selection is cleared
// once the backend hands back a payment link.
func (m *Model) Submit(ctx context.Context, userID string) (string, error) {
	m.mu.Lock()
	if m.selection.Len() == 0 {
		m.mu.Unlock()
		return "", ErrEmptySelection
	}
	if m.submitting {
		m.mu.Unlock()
		return "", ErrSubmitInProgress
	}
	if m.studioID == "" {
		m.mu.Unlock()
		return "", ErrMissingSchedule
	}

	seats := m.selection.Labels()
	payload := entity.BookingPayload{
		ScheduleID: m.studioID,
		Seats:      seats,
		UserID:     userID,
		Amount:     Total(m.pricing.UnitPrice, len(seats), m.pricing.AdminFee),
	}
	m.submitting = true
	m.mu.Unlock()

	redirectURL, err := m.submitter.SubmitPayment(ctx, payload)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitting = false

	if err != nil {
		level := m.log.Error
		if errors.Is(err, ErrMissingRedirect) {
			level = m.log.Warn
		}
		level("Payment submission failed",
			zap.Error(err),
			zap.String("schedule_id", payload.ScheduleID),
			zap.Strings("seats", payload.Seats),
		)
		return "", err
	}

	m.selection.Clear()
	return redirectURL, nil
}

// Reset drops the selection and cancels any load in flight.
func (m *Model) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancelLoad != nil {
		m.cancelLoad()
		m.cancelLoad = nil
	}
	m.loadGen++
	m.selection.Clear()
}

func (m *Model) StudioID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.studioID
}

func (m *Model) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := make([]Row, len(m.rows))
	for i, r := range m.rows {
		seats := make([]entity.Seat, len(r.Seats))
		copy(seats, r.Seats)
		rows[i] = Row{Letter: r.Letter, Seats: seats}
	}

	selected := m.selection.Labels()
	return Snapshot{
		StudioID:   m.studioID,
		Rows:       rows,
		Selected:   selected,
		Quote:      NewQuote(m.pricing, len(selected)),
		Submitting: m.submitting,
	}
}

package usecase

import (
	"context"
	"errors"
	"sync"

	"cinix-booking/internal/data/entity"
)

type fakeBackend struct {
	mu       sync.Mutex
	layouts  map[string][]entity.Seat
	fetchErr error
	redirect string
	payErr   error
	payloads []entity.BookingPayload
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		layouts: map[string][]entity.Seat{
			"7": {
				{ID: "1", SeatNumber: "A2", IsAvailable: true},
				{ID: "2", SeatNumber: "A1", IsAvailable: true},
				{ID: "3", SeatNumber: "B1", IsAvailable: false},
			},
			"8": {
				{ID: "9", SeatNumber: "C1", IsAvailable: true},
			},
		},
		redirect: "https://pay.example/x",
	}
}

func (f *fakeBackend) FetchSeats(_ context.Context, studioID string) ([]entity.Seat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	seats, ok := f.layouts[studioID]
	if !ok {
		return nil, errors.New("studio not found")
	}
	return seats, nil
}

func (f *fakeBackend) SubmitPayment(_ context.Context, payload entity.BookingPayload) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, payload)
	if f.payErr != nil {
		return "", f.payErr
	}
	return f.redirect, nil
}

func (f *fakeBackend) payCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.payloads)
}

type recordingPublisher struct {
	mu      sync.Mutex
	tickets []entity.Ticket
	err     error
}

func (p *recordingPublisher) PublishTicketPurchased(_ context.Context, t entity.Ticket) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tickets = append(p.tickets, t)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

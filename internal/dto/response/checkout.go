package response

import (
	"time"

	"cinix-booking/internal/data/entity"
	"cinix-booking/internal/domain"
)

type PaymentMethodResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IconURL  string `json:"icon_url"`
	Selected bool   `json:"selected"`
}

type CheckoutSummaryResponse struct {
	MovieTitle     string                  `json:"movie_title"`
	PosterURL      string                  `json:"poster_url,omitempty"`
	Cinema         string                  `json:"cinema"`
	Showtime       string                  `json:"showtime"`
	Seats          []string                `json:"seats"`
	Quantity       int                     `json:"quantity"`
	Quote          QuoteResponse           `json:"quote"`
	PaymentMethods []PaymentMethodResponse `json:"payment_methods"`
}

type TicketResponse struct {
	ID          string              `json:"id"`
	BookingCode string              `json:"booking_code"`
	UserID      string              `json:"user_id"`
	MovieTitle  string              `json:"movie_title"`
	PosterURL   string              `json:"poster_url,omitempty"`
	Cinema      string              `json:"cinema"`
	Showtime    string              `json:"showtime"`
	Seats       []string            `json:"seats"`
	Quantity    int                 `json:"quantity"`
	TotalAmount int64               `json:"total_amount"`
	TotalText   string              `json:"total_text"`
	BookingDate time.Time           `json:"booking_date"`
	Status      entity.TicketStatus `json:"status"`
}

type PurchaseResponse struct {
	Ticket    TicketResponse `json:"ticket"`
	Persisted bool           `json:"persisted"`
}

// Helper converters
func PaymentMethodsToResponse(selectedID string) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, len(entity.PaymentMethods))
	for i, m := range entity.PaymentMethods {
		out[i] = PaymentMethodResponse{
			ID:       m.ID,
			Name:     m.Name,
			IconURL:  m.IconURL,
			Selected: m.ID == selectedID,
		}
	}
	return out
}

func TicketToResponse(t entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID,
		BookingCode: t.BookingCode,
		UserID:      t.UserID,
		MovieTitle:  t.MovieTitle,
		PosterURL:   t.PosterURL,
		Cinema:      t.Cinema,
		Showtime:    t.Showtime,
		Seats:       t.Seats,
		Quantity:    t.Quantity,
		TotalAmount: t.TotalAmount,
		TotalText:   domain.FormatIDR(t.TotalAmount),
		BookingDate: t.BookingDate,
		Status:      t.Status,
	}
}

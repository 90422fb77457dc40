package entity

import "time"

type TicketStatus string

const TicketStatusPaid TicketStatus = "Paid"

// Ticket is a locally recorded purchase. Never mutated once stored.
type Ticket struct {
	ID          string       `json:"id"`
	BookingCode string       `json:"booking_code"`
	UserID      string       `json:"user_id"`
	MovieTitle  string       `json:"movie_title"`
	PosterURL   string       `json:"poster_url,omitempty"`
	Cinema      string       `json:"cinema"`
	Showtime    string       `json:"showtime"`
	Seats       []string     `json:"seats"`
	Quantity    int          `json:"quantity"`
	TotalAmount int64        `json:"total_amount"`
	BookingDate time.Time    `json:"booking_date"`
	Status      TicketStatus `json:"status"`
}

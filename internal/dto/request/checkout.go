package request

type CheckoutMovie struct {
	Title      string `json:"title" validate:"required"`
	PosterURL  string `json:"poster_url"`
	Img        string `json:"img"`
	ScheduleID string `json:"schedule_id"`
}

// Poster prefers poster_url and falls back to img.
func (m CheckoutMovie) Poster() string {
	if m.PosterURL != "" {
		return m.PosterURL
	}
	return m.Img
}

type CheckoutRequest struct {
	Movie         CheckoutMovie `json:"movie"`
	Cinema        string        `json:"cinema" validate:"required"`
	Showtime      string        `json:"showtime" validate:"required"`
	Seats         []string      `json:"seats" validate:"required,min=1,unique,dive,required"`
	Quantity      int           `json:"quantity" validate:"gte=0"`
	PaymentMethod string        `json:"payment_method" validate:"omitempty,oneof=qris dana gopay"`
}

// TicketCount is the explicit quantity, or the number of seats when omitted.
func (r CheckoutRequest) TicketCount() int {
	if r.Quantity > 0 {
		return r.Quantity
	}
	return len(r.Seats)
}

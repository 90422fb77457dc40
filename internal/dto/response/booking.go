package response

import (
	"cinix-booking/internal/data/entity"
	"cinix-booking/internal/domain"
)

type SeatResponse struct {
	ID          string `json:"id_seat"`
	SeatNumber  string `json:"seat_number"`
	IsAvailable bool   `json:"is_available"`
	IsSelected  bool   `json:"is_selected"`
}

type RowResponse struct {
	Row   string         `json:"row"`
	Seats []SeatResponse `json:"seats"`
}

type SeatLayoutResponse struct {
	StudioID       string        `json:"studio_id"`
	Rows           []RowResponse `json:"rows"`
	TotalSeats     int           `json:"total_seats"`
	AvailableSeats int           `json:"available_seats"`
}

type QuoteResponse struct {
	UnitPrice     int64  `json:"unit_price"`
	Quantity      int    `json:"quantity"`
	Subtotal      int64  `json:"subtotal"`
	AdminFee      int64  `json:"admin_fee"`
	Total         int64  `json:"total"`
	UnitPriceText string `json:"unit_price_text"`
	SubtotalText  string `json:"subtotal_text"`
	AdminFeeText  string `json:"admin_fee_text"`
	TotalText     string `json:"total_text"`
}

type BookingSessionResponse struct {
	SessionID     string        `json:"session_id"`
	StudioID      string        `json:"studio_id"`
	Rows          []RowResponse `json:"rows"`
	SelectedSeats []string      `json:"selected_seats"`
	Quote         QuoteResponse `json:"quote"`
	Submitting    bool          `json:"submitting"`
}

type PaymentRedirectResponse struct {
	RedirectURL string `json:"redirect_url"`
}

// Helper converters
func SeatToResponse(seat entity.Seat, selected bool) SeatResponse {
	return SeatResponse{
		ID:          string(seat.ID),
		SeatNumber:  seat.SeatNumber,
		IsAvailable: seat.IsAvailable,
		IsSelected:  selected,
	}
}

func RowsToResponse(rows []domain.Row, selected []string) []RowResponse {
	chosen := make(map[string]bool, len(selected))
	for _, label := range selected {
		chosen[label] = true
	}

	out := make([]RowResponse, len(rows))
	for i, row := range rows {
		seats := make([]SeatResponse, len(row.Seats))
		for j, seat := range row.Seats {
			seats[j] = SeatToResponse(seat, chosen[seat.SeatNumber])
		}
		out[i] = RowResponse{Row: row.Letter, Seats: seats}
	}
	return out
}

func SeatLayoutToResponse(studioID string, rows []domain.Row) SeatLayoutResponse {
	layout := SeatLayoutResponse{
		StudioID: studioID,
		Rows:     RowsToResponse(rows, nil),
	}
	for _, row := range rows {
		for _, seat := range row.Seats {
			layout.TotalSeats++
			if seat.IsAvailable {
				layout.AvailableSeats++
			}
		}
	}
	return layout
}

func QuoteToResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse{
		UnitPrice:     q.UnitPrice,
		Quantity:      q.Quantity,
		Subtotal:      q.Subtotal,
		AdminFee:      q.AdminFee,
		Total:         q.Total,
		UnitPriceText: domain.FormatIDR(q.UnitPrice),
		SubtotalText:  domain.FormatIDR(q.Subtotal),
		AdminFeeText:  domain.FormatIDR(q.AdminFee),
		TotalText:     domain.FormatIDR(q.Total),
	}
}

func SessionToResponse(sessionID string, snap domain.Snapshot) BookingSessionResponse {
	selected := snap.Selected
	if selected == nil {
		selected = []string{}
	}
	return BookingSessionResponse{
		SessionID:     sessionID,
		StudioID:      snap.StudioID,
		Rows:          RowsToResponse(snap.Rows, snap.Selected),
		SelectedSeats: selected,
		Quote:         QuoteToResponse(snap.Quote),
		Submitting:    snap.Submitting,
	}
}

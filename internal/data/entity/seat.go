package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SeatID accepts both numeric and string ids from the backend.
type SeatID string

func (id *SeatID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode seat id: %w", err)
		}
		*id = SeatID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode seat id: %w", err)
	}
	*id = SeatID(n.String())
	return nil
}

// Seat is one physical seat as reported by the backend.
type Seat struct {
	ID          SeatID `json:"id_seat"`
	SeatNumber  string `json:"seat_number"` // A1, A2, B1, etc.
	IsAvailable bool   `json:"is_available"`
}

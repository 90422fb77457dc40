package domain

import (
	"sort"
	"strconv"
	"unicode/utf8"

	"cinix-booking/internal/data/entity"
)

// Row is one on-screen seat row, left to right.
type Row struct {
	Letter string        `json:"row"`
	Seats  []entity.Seat `json:"seats"`
}

// RowLetter returns the leading character of a seat label ("B" for "B12").
func RowLetter(label string) string {
	if label == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(label)
	return label[:size]
}

// seatColumn parses the part after the row letter. ok is false for
// non-numeric remainders.
func seatColumn(label string) (int, bool) {
	rest := label[len(RowLetter(label)):]
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

// GroupRows partitions seats by row letter. Rows come back in ascending
// letter order and seats inside a row by ascending column number; labels
// without a numeric column sort after numeric ones, then by label.
func GroupRows(seats []entity.Seat) []Row {
	byLetter := make(map[string][]entity.Seat)
	letters := make([]string, 0)

	for _, seat := range seats {
		letter := RowLetter(seat.SeatNumber)
		if _, seen := byLetter[letter]; !seen {
			letters = append(letters, letter)
		}
		byLetter[letter] = append(byLetter[letter], seat)
	}
	sort.Strings(letters)

	rows := make([]Row, 0, len(letters))
	for _, letter := range letters {
		rowSeats := byLetter[letter]
		sort.SliceStable(rowSeats, func(i, j int) bool {
			return lessColumn(rowSeats[i].SeatNumber, rowSeats[j].SeatNumber)
		})
		rows = append(rows, Row{Letter: letter, Seats: rowSeats})
	}

	return rows
}

func lessColumn(a, b string) bool {
	ca, okA := seatColumn(a)
	cb, okB := seatColumn(b)

	switch {
	case okA && okB:
		if ca != cb {
			return ca < cb
		}
		return a < b
	case okA:
		return true
	case okB:
		return false
	default:
		return a < b
	}
}

package domain

import (
	"testing"

	"cinix-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seat(label string, available bool) entity.Seat {
	return entity.Seat{ID: entity.SeatID("id-" + label), SeatNumber: label, IsAvailable: available}
}

func labelsOf(row Row) []string {
	out := make([]string, len(row.Seats))
	for i, s := range row.Seats {
		out[i] = s.SeatNumber
	}
	return out
}

func TestGroupRows(t *testing.T) {
	t.Run("orders rows by letter and seats by column", func(t *testing.T) {
		seats := []entity.Seat{
			seat("B2", true), seat("A10", true), seat("A2", false),
			seat("C1", true), seat("A1", true), seat("B1", true),
		}

		rows := GroupRows(seats)

		require.Len(t, rows, 3)
		assert.Equal(t, "A", rows[0].Letter)
		assert.Equal(t, []string{"A1", "A2", "A10"}, labelsOf(rows[0]))
		assert.Equal(t, "B", rows[1].Letter)
		assert.Equal(t, []string{"B1", "B2"}, labelsOf(rows[1]))
		assert.Equal(t, "C", rows[2].Letter)
		assert.Equal(t, []string{"C1"}, labelsOf(rows[2]))
	})

	t.Run("every seat lands in exactly one row", func(t *testing.T) {
		seats := []entity.Seat{
			seat("D4", true), seat("A3", true), seat("D1", true),
			seat("B7", false), seat("A1", true), seat("D12", true),
		}

		rows := GroupRows(seats)

		seen := map[string]int{}
		for _, row := range rows {
			for _, s := range row.Seats {
				assert.Equal(t, row.Letter, RowLetter(s.SeatNumber))
				seen[s.SeatNumber]++
			}
		}
		assert.Len(t, seen, len(seats))
		for label, n := range seen {
			assert.Equalf(t, 1, n, "seat %s", label)
		}
	})

	t.Run("empty list yields no rows", func(t *testing.T) {
		rows := GroupRows(nil)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("non-numeric columns do not panic", func(t *testing.T) {
		seats := []entity.Seat{seat("AX", true), seat("A2", true), seat("A", true), seat("AB", true)}

		var rows []Row
		require.NotPanics(t, func() { rows = GroupRows(seats) })
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"A2", "A", "AB", "AX"}, labelsOf(rows[0]))
	})

	t.Run("empty label gets its own row", func(t *testing.T) {
		rows := GroupRows([]entity.Seat{seat("", true), seat("A1", true)})

		require.Len(t, rows, 2)
		assert.Equal(t, "", rows[0].Letter)
		assert.Equal(t, "A", rows[1].Letter)
	})
}

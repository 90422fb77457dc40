package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinix-booking/internal/data/entity"

	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleTicket(id string) entity.Ticket {
	return entity.Ticket{
		ID:          id,
		UserID:      "u1",
		MovieTitle:  "Agak Laen",
		Cinema:      "CINIX Plaza Senayan",
		Showtime:    "19:00",
		Seats:       []string{"A1", "A2"},
		Quantity:    2,
		TotalAmount: 103000,
		BookingDate: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
		Status:      entity.TicketStatusPaid,
	}
}

func TestTicketKey(t *testing.T) {
	assert.Equal(t, "tickets_u1", TicketKey("u1"))
}

func TestMemoryTicketRepository(t *testing.T) {
	repo := NewMemoryTicketRepository(zap.NewNop())
	ctx := context.Background()

	tickets, err := repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	assert.NotNil(t, tickets)
	assert.Empty(t, tickets)

	require.NoError(t, repo.SaveForUser(ctx, "u1", []entity.Ticket{sampleTicket("t1")}))

	tickets, err = repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, sampleTicket("t1"), tickets[0])

	other, err := repo.FindByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRedisTicketRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key is an empty list", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		repo := NewRedisTicketRepository(db, zap.NewNop())
		mock.ExpectGet("tickets_u1").RedisNil()

		tickets, err := repo.FindByUser(ctx, "u1")

		require.NoError(t, err)
		assert.Empty(t, tickets)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("round trips stored list", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		repo := NewRedisTicketRepository(db, zap.NewNop())
		list := []entity.Ticket{sampleTicket("t2"), sampleTicket("t1")}
		raw, err := encodeTickets(list)
		require.NoError(t, err)

		mock.ExpectSet("tickets_u1", raw, 0).SetVal("OK")
		mock.ExpectGet("tickets_u1").SetVal(string(raw))

		require.NoError(t, repo.SaveForUser(ctx, "u1", list))
		tickets, err := repo.FindByUser(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, list, tickets)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("read failure is wrapped", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		repo := NewRedisTicketRepository(db, zap.NewNop())
		mock.ExpectGet("tickets_u1").SetErr(errors.New("connection refused"))

		_, err := repo.FindByUser(ctx, "u1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

type fakeRow struct {
	raw []byte
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.raw
	return nil
}

// fakePgx keeps the last upserted value per key.
type fakePgx struct {
	values map[string][]byte
}

func (f *fakePgx) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	raw, ok := f.values[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{raw: raw}
}

func (f *fakePgx) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	if len(args) == 2 {
		f.values[args[0].(string)] = args[1].([]byte)
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakePgx) Ping(context.Context) error { return nil }

func (f *fakePgx) Close() {}

func TestPostgresTicketRepository(t *testing.T) {
	ctx := context.Background()
	db := &fakePgx{values: map[string][]byte{}}
	repo := NewPostgresTicketRepository(db, zap.NewNop())

	require.NoError(t, EnsureClientStorage(ctx, db))

	tickets, err := repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, tickets)

	list := []entity.Ticket{sampleTicket("t1")}
	require.NoError(t, repo.SaveForUser(ctx, "u1", list))
	assert.Contains(t, db.values, "tickets_u1")

	tickets, err = repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, list, tickets)
}

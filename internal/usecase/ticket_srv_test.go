package usecase

import (
	"context"
	"fmt"
	"testing"

	"cinix-booking/internal/data/entity"
	"cinix-booking/internal/data/repository"
	"cinix-booking/internal/domain"
	"cinix-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTicketService_List(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryTicketRepository(zap.NewNop())

	tickets := make([]entity.Ticket, 0, 12)
	for i := range 12 {
		tickets = append(tickets, entity.Ticket{ID: fmt.Sprintf("t%02d", i), UserID: "u1", TotalAmount: 50000})
	}
	require.NoError(t, repo.SaveForUser(ctx, "u1", tickets))

	svc := NewTicketService(repo, zap.NewNop())

	t.Run("first page", func(t *testing.T) {
		page, err := svc.List(ctx, "u1", &request.PaginatedRequest{Page: 1, PerPage: 5})
		require.NoError(t, err)
		require.Len(t, page.Data, 5)
		assert.Equal(t, "t00", page.Data[0].ID)
		assert.Equal(t, "Rp 50.000", page.Data[0].TotalText)
		assert.Equal(t, int64(12), page.Pagination.Total)
		assert.Equal(t, 3, page.Pagination.TotalPages)
	})

	t.Run("last partial page", func(t *testing.T) {
		page, err := svc.List(ctx, "u1", &request.PaginatedRequest{Page: 3, PerPage: 5})
		require.NoError(t, err)
		require.Len(t, page.Data, 2)
		assert.Equal(t, "t10", page.Data[0].ID)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		page, err := svc.List(ctx, "u1", &request.PaginatedRequest{Page: 9, PerPage: 5})
		require.NoError(t, err)
		assert.NotNil(t, page.Data)
		assert.Empty(t, page.Data)
	})

	t.Run("huge page number is empty", func(t *testing.T) {
		page, err := svc.List(ctx, "u1", &request.PaginatedRequest{Page: 922337203685477580, PerPage: 100})
		require.NoError(t, err)
		assert.Empty(t, page.Data)
		assert.Equal(t, int64(12), page.Pagination.Total)
	})

	t.Run("unknown user has no tickets", func(t *testing.T) {
		page, err := svc.List(ctx, "u2", &request.PaginatedRequest{Page: 1, PerPage: 10})
		require.NoError(t, err)
		assert.Empty(t, page.Data)
		assert.Zero(t, page.Pagination.Total)
	})

	t.Run("user is required", func(t *testing.T) {
		_, err := svc.List(ctx, "", &request.PaginatedRequest{Page: 1, PerPage: 10})
		assert.ErrorIs(t, err, domain.ErrUserRequired)
	})
}

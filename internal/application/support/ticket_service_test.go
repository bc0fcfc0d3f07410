package support

import (
	"context"
	"testing"
	"time"

	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/internal/domain/support"
	"github.com/argos/backend/tests/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTicketRepo struct {
	testutil.MockOwnedRepository[support.Ticket]
}

var deadline = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func validRequest() CreateTicketRequest {
	return CreateTicketRequest{
		TicketNumber: "SAC-1042",
		CustomerName: "João Pereira",
		Subject:      "Pé da mesa chegou quebrado",
		Category:     "defeito",
		Priority:     "alta",
		Status:       "aberto",
		Channel:      "amazon",
		SLADeadline:  deadline,
	}
}

func TestTicketService_Create_SLAState(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"well within", deadline.Add(-48 * time.Hour), "dentro"},
		{"less than a day left", deadline.Add(-2 * time.Hour), "proximo"},
		{"past deadline", deadline.Add(time.Minute), "estourado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockTicketRepo)
			svc := NewTicketService(repo)
			svc.now = func() time.Time { return tt.now }
			repo.On("Save", ctx, mock.AnythingOfType("*support.Ticket")).Return(nil).Once()

			resp, err := svc.Create(ctx, userID, validRequest())

			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.SLAState)
		})
	}
}

func TestTicketService_Update(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()
	existing, err := support.NewTicket(userID, validRequest().fields())
	require.NoError(t, err)

	repo := new(mockTicketRepo)
	svc := NewTicketService(repo)
	repo.On("FindByIDForUser", ctx, userID, existing.ID).Return(existing, nil).Once()
	repo.On("Save", ctx, existing).Return(nil).Once()

	status, resolution := "resolvido", "Peça de reposição enviada"
	resp, err := svc.Update(ctx, userID, existing.ID, UpdateTicketRequest{Status: &status, Resolution: &resolution})

	require.NoError(t, err)
	assert.Equal(t, "resolvido", resp.Status)
	assert.Equal(t, "Peça de reposição enviada", resp.Resolution)
	assert.Equal(t, "alta", resp.Priority)
}

func TestTicketService_Update_BlankSubject(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()
	existing, err := support.NewTicket(userID, validRequest().fields())
	require.NoError(t, err)

	repo := new(mockTicketRepo)
	svc := NewTicketService(repo)
	repo.On("FindByIDForUser", ctx, userID, existing.ID).Return(existing, nil).Once()

	blank := "   "
	_, err = svc.Update(ctx, userID, existing.ID, UpdateTicketRequest{Subject: &blank})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_SUBJECT", domainErr.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestTicketService_List(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()
	repo := new(mockTicketRepo)
	svc := NewTicketService(repo)

	byFilter := mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["priority"] == "alta" && f.Filters["category"] == "defeito" && f.PageSize == 50
	})
	repo.On("FindAllForUser", ctx, userID, byFilter).Return([]support.Ticket{}, nil).Once()
	repo.On("CountForUser", ctx, userID, byFilter).Return(int64(3), nil).Once()

	_, total, err := svc.List(ctx, userID, TicketListFilter{Priority: "alta", Category: "defeito", PageSize: 50})

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestTicketService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()
	id := uuid.New()
	repo := new(mockTicketRepo)
	svc := NewTicketService(repo)
	repo.On("DeleteForUser", ctx, userID, id).Return(nil).Once()

	require.NoError(t, svc.Delete(ctx, userID, id))
	repo.AssertExpectations(t)
}

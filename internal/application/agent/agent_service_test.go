package agent

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/argos/backend/internal/domain/agent"
	"github.com/argos/backend/internal/domain/dashboard"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/internal/infrastructure/catalog"
	"github.com/argos/backend/tests/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockConversationRepo struct {
	testutil.MockOwnedRepository[agent.Conversation]
}

var fixedNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestService(dashboards dashboard.SavedDashboardRepository, conversations agent.ConversationRepository) *Service {
	svc := NewService(catalog.NewStaticDataset(), dashboards, conversations, zap.NewNop())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func newConversation(t *testing.T, userID uuid.UUID, messages string) *agent.Conversation {
	t.Helper()
	c, err := agent.NewConversation(userID, agent.ConversationFields{Title: "Chat", Messages: messages})
	require.NoError(t, err)
	return c
}

func TestService_Query(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()

	t.Run("answers without a conversation", func(t *testing.T) {
		svc := newTestService(new(testutil.MockSavedDashboardRepository), new(mockConversationRepo))

		resp, err := svc.Query(ctx, userID, QueryRequest{Query: "  Qual o faturamento por canal?  "})

		require.NoError(t, err)
		assert.Equal(t, []agent.Domain{agent.DomainFaturamento, agent.DomainCanais}, resp.Domains)
		assert.Equal(t, "Qual o faturamento por canal?", resp.Dashboard.Query)
		assert.Equal(t, fixedNow.UnixMilli(), resp.Dashboard.Timestamp)
		assert.NotEmpty(t, resp.Message)
	})

	t.Run("unmatched query falls back to kpis", func(t *testing.T) {
		svc := newTestService(new(testutil.MockSavedDashboardRepository), new(mockConversationRepo))

		resp, err := svc.Query(ctx, userID, QueryRequest{Query: "bom dia"})

		require.NoError(t, err)
		assert.Equal(t, []agent.Domain{agent.DomainKPIs}, resp.Domains)
	})

	t.Run("blank query", func(t *testing.T) {
		svc := newTestService(new(testutil.MockSavedDashboardRepository), new(mockConversationRepo))

		_, err := svc.Query(ctx, userID, QueryRequest{Query: " \t\n"})

		assert.ErrorIs(t, err, ErrEmptyQuery)
	})

	t.Run("appends both sides to the conversation", func(t *testing.T) {
		conversations := new(mockConversationRepo)
		svc := newTestService(new(testutil.MockSavedDashboardRepository), conversations)
		conversation := newConversation(t, userID, `[{"role":"agent","content":"Olá!","timestamp":1}]`)
		conversations.On("FindByIDForUser", mock.Anything, userID, conversation.ID).Return(conversation, nil).Once()
		conversations.On("Save", mock.Anything, conversation).Return(nil).Once()

		resp, err := svc.Query(ctx, userID, QueryRequest{Query: "fornecedores", ConversationID: &conversation.ID})

		require.NoError(t, err)
		var transcript []agent.ChatMessage
		require.NoError(t, json.Unmarshal([]byte(conversation.Messages), &transcript))
		require.Len(t, transcript, 3)
		assert.Equal(t, agent.ChatMessage{Role: agent.RoleUser, Content: "fornecedores", Timestamp: fixedNow.UnixMilli()}, transcript[1])
		assert.Equal(t, agent.RoleAgent, transcript[2].Role)
		assert.Equal(t, resp.Message, transcript[2].Content)
		conversations.AssertExpectations(t)
	})

	t.Run("foreign conversation", func(t *testing.T) {
		conversations := new(mockConversationRepo)
		svc := newTestService(new(testutil.MockSavedDashboardRepository), conversations)
		id := uuid.New()
		conversations.On("FindByIDForUser", mock.Anything, userID, id).Return(nil, shared.ErrNotFound).Once()

		_, err := svc.Query(ctx, userID, QueryRequest{Query: "estoque", ConversationID: &id})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		conversations.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestService_SaveDashboard(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()

	t.Run("stores a new dashboard", func(t *testing.T) {
		dashboards := new(testutil.MockSavedDashboardRepository)
		svc := newTestService(dashboards, new(mockConversationRepo))
		var saved *dashboard.SavedDashboard
		dashboards.On("FindByQueryForUser", ctx, userID, "logística").Return(nil, shared.ErrNotFound).Once()
		dashboards.On("Save", ctx, mock.AnythingOfType("*dashboard.SavedDashboard")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*dashboard.SavedDashboard) }).
			Return(nil).Once()

		resp, err := svc.SaveDashboard(ctx, userID, SaveDashboardRequest{Query: "logística"})

		require.NoError(t, err)
		assert.True(t, resp.Created)
		require.NotNil(t, saved)
		assert.Equal(t, saved.ID, resp.ID)
		assert.Equal(t, userID, saved.UserID)
		assert.Equal(t, AgentName, saved.CreatedBy)
		assert.True(t, json.Valid([]byte(saved.Widgets)))
	})

	t.Run("reuses the dashboard saved for the same query", func(t *testing.T) {
		dashboards := new(testutil.MockSavedDashboardRepository)
		svc := newTestService(dashboards, new(mockConversationRepo))
		existing, err := dashboard.NewSavedDashboard(userID, dashboard.SavedDashboardFields{
			Title: "Logística", Widgets: "[]", Query: "logística",
		})
		require.NoError(t, err)
		dashboards.On("FindByQueryForUser", ctx, userID, "logística").Return(existing, nil).Once()

		resp, err := svc.SaveDashboard(ctx, userID, SaveDashboardRequest{Query: "logística"})

		require.NoError(t, err)
		assert.False(t, resp.Created)
		assert.Equal(t, existing.ID, resp.ID)
		dashboards.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("lookup failure", func(t *testing.T) {
		dashboards := new(testutil.MockSavedDashboardRepository)
		svc := newTestService(dashboards, new(mockConversationRepo))
		dbErr := errors.New("timeout")
		dashboards.On("FindByQueryForUser", ctx, userID, "kpis").Return(nil, dbErr).Once()

		_, err := svc.SaveDashboard(ctx, userID, SaveDashboardRequest{Query: "kpis"})

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestService_Suggestions(t *testing.T) {
	svc := newTestService(new(testutil.MockSavedDashboardRepository), new(mockConversationRepo))

	resp := svc.Suggestions()
	resp.Queries[0] = "changed"

	assert.Len(t, resp.Queries, 10)
	assert.NotEqual(t, "changed", agent.SuggestedQueries[0])
}

func TestConversationService_Create(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()

	t.Run("linked dashboard must be owned", func(t *testing.T) {
		conversations, dashboards := new(mockConversationRepo), new(testutil.MockSavedDashboardRepository)
		svc := NewConversationService(conversations, dashboards)
		foreign := uuid.New()
		dashboards.On("FindByIDForUser", ctx, userID, foreign).Return(nil, shared.ErrNotFound).Once()

		_, err := svc.Create(ctx, userID, CreateConversationRequest{
			Title: "Chat", Messages: json.RawMessage(`[]`), DashboardID: &foreign,
		})

		assert.ErrorIs(t, err, ErrDashboardNotOwned)
		conversations.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("without dashboard", func(t *testing.T) {
		conversations, dashboards := new(mockConversationRepo), new(testutil.MockSavedDashboardRepository)
		svc := NewConversationService(conversations, dashboards)
		conversations.On("Save", ctx, mock.AnythingOfType("*agent.Conversation")).Return(nil).Once()

		resp, err := svc.Create(ctx, userID, CreateConversationRequest{Title: "Chat", Messages: json.RawMessage(`[]`)})

		require.NoError(t, err)
		assert.Nil(t, resp.DashboardID)
		assert.JSONEq(t, `[]`, string(resp.Messages))
	})
}

func TestConversationService_Update(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()
	conversations, dashboards := new(mockConversationRepo), new(testutil.MockSavedDashboardRepository)
	svc := NewConversationService(conversations, dashboards)
	conversation := newConversation(t, userID, `[]`)

	owned, err := dashboard.NewSavedDashboard(userID, dashboard.SavedDashboardFields{Title: "D", Widgets: "[]", Query: "kpis"})
	require.NoError(t, err)
	conversations.On("FindByIDForUser", ctx, userID, conversation.ID).Return(conversation, nil).Once()
	dashboards.On("FindByIDForUser", ctx, userID, owned.ID).Return(owned, nil).Once()
	conversations.On("Save", ctx, conversation).Return(nil).Once()

	title := "Renomeada"
	resp, err := svc.Update(ctx, userID, conversation.ID, UpdateConversationRequest{Title: &title, DashboardID: &owned.ID})

	require.NoError(t, err)
	assert.Equal(t, "Renomeada", resp.Title)
	require.NotNil(t, resp.DashboardID)
	assert.Equal(t, owned.ID, *resp.DashboardID)
	dashboards.AssertExpectations(t)
}

package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewMockDB(t *testing.T) {
	db := NewMockDB(t)
	defer db.Close()

	assert.NotNil(t, db.DB)
	db.ExpectationsWereMet(t)
}

func TestTestContext(t *testing.T) {
	tc := NewTestContext(t)
	tc.SetRequestID("req-123")
	tc.SetUserID(TestUserID())
	tc.SetHeader("X-Trace", "abc")

	assert.Equal(t, "req-123", tc.Context.GetString(logger.GinRequestIDKey))
	assert.Equal(t, TestUserID().String(), tc.Context.GetString(logger.GinUserIDKey))
	assert.Equal(t, "abc", tc.Context.Request.Header.Get("X-Trace"))

	tc.Context.JSON(http.StatusTeapot, gin.H{"success": true})
	assert.Equal(t, http.StatusTeapot, tc.ResponseCode())
	AssertSuccessResponse(t, tc)
}

func TestTestUUIDs(t *testing.T) {
	assert.Equal(t, NewTestUUID("a"), NewTestUUID("a"))
	assert.NotEqual(t, NewTestUUID("a"), NewTestUUID("b"))
	assert.NotEqual(t, TestUserID(), OtherUserID())
	assert.NotEqual(t, uuid.Nil, TestUserID())
}

func TestRunHTTPTestCase(t *testing.T) {
	userID := TestUserID()
	echo := func(c *gin.Context) {
		var body map[string]string
		_ = c.ShouldBindJSON(&body)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    gin.H{"user": c.GetString(logger.GinUserIDKey), "id": c.Param("id"), "name": body["name"]},
		})
	}

	RunHTTPTestCases(t, echo, []HTTPTestCase{
		{
			Name:           "authenticated with params and body",
			Method:         http.MethodPost,
			UserID:         userID,
			Params:         gin.Params{{Key: "id", Value: "42"}},
			Body:           map[string]string{"name": "Acme"},
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   map[string]any{"success": true},
			Validate: func(t *testing.T, tc *TestContext) {
				data := ResponseData[map[string]string](t, tc)
				assert.Equal(t, map[string]string{"user": userID.String(), "id": "42", "name": "Acme"}, data)
			},
		},
		{
			Name:           "anonymous",
			ExpectedStatus: http.StatusOK,
			Validate: func(t *testing.T, tc *TestContext) {
				assert.Empty(t, ResponseData[map[string]string](t, tc)["user"])
			},
		},
	})
}

func TestAssertErrorResponse(t *testing.T) {
	tc := NewTestContext(t)
	tc.Context.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "ERR_NOT_FOUND"}})

	AssertErrorResponse(t, tc, "ERR_NOT_FOUND")
}

func TestMockOwnedRepository(t *testing.T) {
	type record struct{ Name string }
	repo := new(MockOwnedRepository[record])
	ctx := context.Background()
	userID, id := TestUserID(), NewTestUUID("record")

	repo.On("FindByIDForUser", ctx, userID, id).Return(nil, shared.ErrNotFound).Once()
	repo.On("Save", ctx, mock.Anything).Return(nil).Once()

	_, err := repo.FindByIDForUser(ctx, userID, id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.NoError(t, repo.Save(ctx, &record{Name: "x"}))
	repo.AssertExpectations(t)
}

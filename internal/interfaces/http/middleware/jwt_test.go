package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/argos/backend/internal/infrastructure/auth"
	"github.com/argos/backend/internal/infrastructure/config"
	"github.com/argos/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingBlacklist struct{}

func (failingBlacklist) AddToBlacklist(context.Context, string, time.Duration) error {
	return assert.AnError
}

func (failingBlacklist) IsBlacklisted(context.Context, string) (bool, error) {
	return false, assert.AnError
}

func testJWTService(accessTTL time.Duration) *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret-at-least-32-bytes!!",
		RefreshSecret:          "test-refresh-secret-at-least-32-bytes!",
		Issuer:                 "argos-test",
		AccessTokenExpiration:  accessTTL,
		RefreshTokenExpiration: time.Hour,
	})
}

func protectedRouter(jwtSvc *auth.JWTService, blacklist auth.TokenBlacklist) *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.Use(JWTAuthMiddleware(JWTMiddlewareConfig{JWTService: jwtSvc, TokenBlacklist: blacklist}))
	router.GET("/me", func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		claims := GetJWTClaims(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String(), "email": claims.Email})
	})
	return router
}

func callMe(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set(AuthHeaderKey, authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func assertUnauthorized(t *testing.T, w *httptest.ResponseRecorder, code string) {
	t.Helper()
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, code, resp.Error.Code)
	assert.Equal(t, NotAuthenticatedMessage, resp.Error.Message)
	assert.NotEmpty(t, resp.Error.RequestID)
}

func TestJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtSvc := testJWTService(15 * time.Minute)
	userID := uuid.New()

	pair, err := jwtSvc.GenerateTokenPair(userID, "ana@argos.dev")
	require.NoError(t, err)

	t.Run("valid token passes and exposes the caller", func(t *testing.T) {
		w := callMe(protectedRouter(jwtSvc, nil), BearerPrefix+pair.AccessToken)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, "ana@argos.dev", body["email"])
	})

	t.Run("missing header", func(t *testing.T) {
		assertUnauthorized(t, callMe(protectedRouter(jwtSvc, nil), ""), dto.ErrCodeUnauthorized)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		assertUnauthorized(t, callMe(protectedRouter(jwtSvc, nil), "Basic abc"), dto.ErrCodeUnauthorized)
	})

	t.Run("garbage token", func(t *testing.T) {
		assertUnauthorized(t, callMe(protectedRouter(jwtSvc, nil), BearerPrefix+"not.a.jwt"), dto.ErrCodeUnauthorized)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		assertUnauthorized(t, callMe(protectedRouter(jwtSvc, nil), BearerPrefix+pair.RefreshToken), dto.ErrCodeUnauthorized)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := auth.NewJWTService(config.JWTConfig{
			Secret:                 "a-completely-different-secret-value!!",
			RefreshSecret:          "another-different-refresh-secret!!!!",
			Issuer:                 "argos-test",
			AccessTokenExpiration:  time.Minute,
			RefreshTokenExpiration: time.Hour,
		})
		forged, err := other.GenerateTokenPair(userID, "ana@argos.dev")
		require.NoError(t, err)

		assertUnauthorized(t, callMe(protectedRouter(jwtSvc, nil), BearerPrefix+forged.AccessToken), dto.ErrCodeUnauthorized)
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived := testJWTService(-time.Minute)
		expired, err := shortLived.GenerateTokenPair(userID, "ana@argos.dev")
		require.NoError(t, err)

		assertUnauthorized(t, callMe(protectedRouter(jwtSvc, nil), BearerPrefix+expired.AccessToken), dto.ErrCodeTokenExpired)
	})

	t.Run("revoked token", func(t *testing.T) {
		blacklist := auth.NewInMemoryTokenBlacklist(time.Minute)
		t.Cleanup(func() { _ = blacklist.Close() })

		claims, err := jwtSvc.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)
		require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Minute))

		assertUnauthorized(t, callMe(protectedRouter(jwtSvc, blacklist), BearerPrefix+pair.AccessToken), dto.ErrCodeTokenRevoked)
	})

	t.Run("blacklist outage fails open", func(t *testing.T) {
		w := callMe(protectedRouter(jwtSvc, failingBlacklist{}), BearerPrefix+pair.AccessToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetUserID_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)
	assert.Nil(t, GetJWTClaims(c))
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"WANDERINDIA_BACK-END/internal/config"
	"WANDERINDIA_BACK-END/internal/middleware"
	"WANDERINDIA_BACK-END/internal/utils"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:         "test-secret",
		AccessTokenTTL: time.Hour,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, err := middleware.GenerateToken(userID, "traveler@example.com", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := middleware.ValidateToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "traveler@example.com", claims.Email)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := middleware.GenerateToken(uuid.New(), "traveler@example.com", cfg)
	require.NoError(t, err)

	_, err = middleware.ValidateToken(token, &config.JWTConfig{Secret: "other-secret"})
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := &config.JWTConfig{
		Secret:         "test-secret",
		AccessTokenTTL: -time.Minute,
	}
	token, err := middleware.GenerateToken(uuid.New(), "traveler@example.com", cfg)
	require.NoError(t, err)

	_, err = middleware.ValidateToken(token, cfg)
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()
	token, err := middleware.GenerateToken(userID, "traveler@example.com", cfg)
	require.NoError(t, err)

	var gotUserID uuid.UUID
	var gotEmail string
	next := func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		gotEmail, _ = utils.GetEmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}
	handler := middleware.AuthMiddleware(next, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, "traveler@example.com", gotEmail)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	cfg := testJWTConfig()
	handler := middleware.AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be reached")
	}, cfg)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			handler(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

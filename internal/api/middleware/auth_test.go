package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/tasker-api/internal/api/shared"
	"github.com/phrazzld/tasker-api/internal/service/auth"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func newTestMiddleware(timeFunc func() time.Time) (*AuthMiddleware, auth.JWTService) {
	svc := auth.NewTestJWTService(testSecret, time.Hour, timeFunc)
	return NewAuthMiddleware(svc), svc
}

// nextRecorder is a terminal handler that records whether it ran and
// what user ID it saw in the context.
type nextRecorder struct {
	called bool
	userID uuid.UUID
}

func (n *nextRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n.called = true
	if id, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID); ok {
		n.userID = id
	}
	w.WriteHeader(http.StatusOK)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("missing header is rejected with 401", func(t *testing.T) {
		t.Parallel()
		mw, _ := newTestMiddleware(nil)
		next := &nextRecorder{}

		req := httptest.NewRequest(http.MethodGet, "/api/tasks/", nil)
		rec := httptest.NewRecorder()
		mw.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "No token, authorization denied", decodeError(t, rec).Error)
		assert.False(t, next.called)
	})

	t.Run("malformed header is rejected with 401", func(t *testing.T) {
		t.Parallel()
		mw, _ := newTestMiddleware(nil)

		for _, header := range []string{"Bearer", "Token abc", "Bearer a b", "bearer abc"} {
			next := &nextRecorder{}
			req := httptest.NewRequest(http.MethodGet, "/api/tasks/", nil)
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()
			mw.Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
			assert.False(t, next.called, "header %q", header)
		}
	})

	t.Run("invalid token is rejected with 402", func(t *testing.T) {
		t.Parallel()
		mw, _ := newTestMiddleware(nil)
		next := &nextRecorder{}

		req := httptest.NewRequest(http.MethodGet, "/api/tasks/", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()
		mw.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
		assert.Equal(t, "Invalid token", decodeError(t, rec).Error)
		assert.False(t, next.called)
	})

	t.Run("expired token is rejected with 402", func(t *testing.T) {
		t.Parallel()

		// Issue at fixed time, validate an hour past expiry
		issueSvc := auth.NewTestJWTService(testSecret, time.Hour, func() time.Time {
			return fixedTime
		})
		token, err := issueSvc.GenerateToken(context.Background(), userID)
		require.NoError(t, err)

		mw, _ := newTestMiddleware(func() time.Time {
			return fixedTime.Add(2 * time.Hour)
		})
		next := &nextRecorder{}

		req := httptest.NewRequest(http.MethodGet, "/api/tasks/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		mw.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
		assert.Equal(t, "Token expired", decodeError(t, rec).Error)
		assert.False(t, next.called)
	})

	t.Run("valid token attaches user ID and proceeds", func(t *testing.T) {
		t.Parallel()
		mw, svc := newTestMiddleware(nil)
		next := &nextRecorder{}

		token, err := svc.GenerateToken(context.Background(), userID)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/tasks/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		mw.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, next.called)
		assert.Equal(t, userID, next.userID)
	})
}

func TestGetUserID(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	got, ok := GetUserID(req)
	assert.False(t, ok)
	assert.Equal(t, uuid.UUID{}, got)

	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	got, ok = GetUserID(req.WithContext(ctx))
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/tasker-api/internal/api/shared"
)

// errInvalidPathID is returned by getPathUUID for missing or malformed
// path parameters.
var errInvalidPathID = errors.New("invalid path parameter")

// DecodeJSON decodes the request body into dst. Unknown fields are
// tolerated; struct validation happens separately via the validator.
func DecodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// getUserIDFromContext extracts the authenticated user's UUID from the
// request context. The user ID is placed in the context by the
// authentication middleware; a missing value means the route was wired
// without the middleware, which is a programming error.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// getPathUUID extracts a UUID from the URL path parameters.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, errInvalidPathID
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, errInvalidPathID
	}

	return id, nil
}

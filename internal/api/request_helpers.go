package api

import (
	"net/http"

	"github.com/oklog/ulid/v2"
	"github.com/taskslite/tasks-lite-api/internal/api/shared"
	"github.com/taskslite/tasks-lite-api/internal/domain"
)

// CurrentUser extracts the authenticated user from the request context.
// The identity is placed there by the authentication middleware.
func CurrentUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// parseTaskID parses a task ID path parameter. A malformed ID behaves like
// a missing task: the caller cannot probe ID formats.
func parseTaskID(raw string) (ulid.ULID, bool) {
	id, err := ulid.Parse(raw)
	if err != nil {
		return ulid.ULID{}, false
	}
	return id, true
}

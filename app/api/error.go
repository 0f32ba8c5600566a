package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error is a server-rejected request. Detail carries the server-provided
// explanation when the response body had one, otherwise the HTTP status text.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Detail)
}

// Unauthorized reports whether the request was rejected for a missing or
// invalid credential, which forces the session gate back to the
// unauthenticated state.
func (e *Error) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{
		StatusCode: resp.StatusCode,
		Detail:     http.StatusText(resp.StatusCode),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	// The server reports failures as {"detail": ...} where detail is
	// usually a string but may be a validation structure.
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return apiErr
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil {
		apiErr.Detail = detail
	} else {
		apiErr.Detail = string(payload.Detail)
	}

	return apiErr
}

package meta

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Errors returned before any network call when a request cannot be built.
var (
	ErrMissingAccount = errors.New("meta: missing ad account id")
	ErrMissingToken   = errors.New("meta: missing access token")
	ErrMissingPost    = errors.New("meta: missing post id")
	ErrEmptyID        = errors.New("meta: response carried no id")
)

// APIError is a non-2xx Graph API response.
type APIError struct {
	Status    int
	Code      int
	Subcode   int
	Type      string
	Message   string
	FBTraceID string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("meta api: status %d", e.Status)
	}
	if e.Code != 0 {
		return fmt.Sprintf("meta api: status %d: %s (code %d)", e.Status, e.Message, e.Code)
	}
	return fmt.Sprintf("meta api: status %d: %s", e.Status, e.Message)
}

// TokenExpired reports whether the error is an OAuth failure requiring a human
// to reconnect the integration.
func (e *APIError) TokenExpired() bool {
	return e.Code == 190 || e.Type == "OAuthException"
}

type errorEnvelope struct {
	Error struct {
		Message      string `json:"message"`
		Type         string `json:"type"`
		Code         int    `json:"code"`
		ErrorSubcode int    `json:"error_subcode"`
		FBTraceID    string `json:"fbtrace_id"`
	} `json:"error"`
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		apiErr.Code = env.Error.Code
		apiErr.Subcode = env.Error.ErrorSubcode
		apiErr.Type = env.Error.Type
		apiErr.Message = env.Error.Message
		apiErr.FBTraceID = env.Error.FBTraceID
	}
	return apiErr
}

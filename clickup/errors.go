package clickup

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Error is a non-2xx ClickUp response, or a request the client refused to
// send. StatusCode is zero for the latter.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("(%d) %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// newError reads ClickUp's {"err": "...", "ECODE": "..."} error body,
// falling back to the raw body text.
func newError(status int, body []byte) *Error {
	var payload struct {
		Err   string `json:"err"`
		ECode string `json:"ECODE"`
	}
	e := &Error{StatusCode: status}
	if json.Unmarshal(body, &payload) == nil && payload.Err != "" {
		e.Message = payload.Err
		e.Code = payload.ECode
		return e
	}
	e.Message = strings.TrimSpace(string(body))
	if e.Message == "" {
		e.Message = fmt.Sprintf("clickup api error %d", status)
	}
	return e
}

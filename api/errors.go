package api

import "encoding/json"

// Error is a structured rejection from the backend. Message is already
// classified and safe to surface to the user.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// errorBody is the backend's failure payload. Both fields are optional and
// may be null.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// classify extracts a user-facing message from a failure payload: the
// "error" field wins, then "message", then the caller's fallback.
func classify(status int, body []byte, fallback string) *Error {
	msg := fallback
	if len(body) > 0 {
		var payload errorBody
		if err := json.Unmarshal(body, &payload); err == nil {
			switch {
			case payload.Error != "":
				msg = payload.Error
			case payload.Message != "":
				msg = payload.Message
			}
		}
	}
	return &Error{StatusCode: status, Message: msg}
}

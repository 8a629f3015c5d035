package client

import (
	"encoding/json"
	"net/http"
)

// Error is a non-2xx response from the budget server. Error returns the
// server's description unchanged so callers can show it as is.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// problem is the subset of the RFC 9457 body huma responds with.
type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func decodeError(statusCode int, body []byte) *Error {
	var p problem
	if err := json.Unmarshal(body, &p); err == nil {
		if p.Detail != "" {
			return &Error{Status: statusCode, Message: p.Detail}
		}
		if p.Title != "" {
			return &Error{Status: statusCode, Message: p.Title}
		}
	}

	message := http.StatusText(statusCode)
	if message == "" {
		message = "unexpected status"
	}
	return &Error{Status: statusCode, Message: message}
}

// Package api defines shared response envelope types for the HTTP API.
package api

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body returned for simple success responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the JSON body returned on successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

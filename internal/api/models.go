package api

import "github.com/alee-2021/clear/internal/domain"

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token,omitempty"`
	Username string `json:"username,omitempty"`
}

// ChatRequest defines the payload for the natural-language endpoint.
type ChatRequest struct {
	Text string `json:"text" validate:"required"`
}

// MessageResponse is a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToggleResponse reports a task's state after a status toggle.
type ToggleResponse struct {
	Message   string            `json:"message"`
	NewStatus domain.TaskStatus `json:"new_status"`
}

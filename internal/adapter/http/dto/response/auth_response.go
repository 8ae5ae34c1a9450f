package response

import (
	"time"

	"fiftymais/internal/domain/entities"
)

type SessionResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{UserID: s.UserID, Email: s.Email, ExpiresAt: s.ExpiresAt}
}

type SignInResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	Session     SessionResponse `json:"session"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

package request

import "fiftymais/internal/domain/entities"

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type PasswordResetConfirmRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// CheckoutRequest is optional; an empty body starts an anonymous checkout.
type CheckoutRequest struct {
	Email  string `json:"email" binding:"omitempty,email"`
	UserID string `json:"user_id"`
}

func (r CheckoutRequest) ToEntity() entities.CheckoutRequest {
	return entities.CheckoutRequest{Email: r.Email, UserID: r.UserID}
}

package handlers

import (
	"errors"
	"net/http"

	request "fiftymais/internal/adapter/http/dto/request"
	response "fiftymais/internal/adapter/http/dto/response"
	"fiftymais/internal/adapter/http/middleware"
	"fiftymais/internal/usecase"
	"fiftymais/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
	logger  *zap.Logger
}

func NewAuthHandler(uc usecase.IAuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{usecase: uc, logger: logger}
}

// SignIn godoc
// @Summary      Exchange e-mail and password for a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.SignInRequest  true  "credentials"
// @Success      200   {object}  response.SignInResponse
// @Failure      401   {object}  pkg.HTTPError
// @Router       /auth/sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var payload request.SignInRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	res, err := h.usecase.SignIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SignInResponse{
		AccessToken: res.Token,
		TokenType:   "Bearer",
		Session:     response.FromSession(res.Session),
	})
}

// GetSession godoc
// @Summary      Session behind the bearer token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Failure      401  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /auth/session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		writeError(c, errUnauthorized)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// RequestPasswordReset godoc
// @Summary      E-mail a password reset link
// @Description  Always answers 202 so account existence is not disclosed.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.PasswordResetRequest  true  "email"
// @Success      202   {object}  response.MessageResponse
// @Router       /auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var payload request.PasswordResetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	if err := h.usecase.RequestPasswordReset(c.Request.Context(), payload.Email); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusAccepted, response.MessageResponse{Message: "Se o e-mail estiver cadastrado, enviaremos as instruções."})
}

// ConfirmPasswordReset godoc
// @Summary      Set a new password with a reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.PasswordResetConfirmRequest  true  "token and password"
// @Success      200   {object}  response.MessageResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var payload request.PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	if err := h.usecase.ResetPassword(c.Request.Context(), payload.Token, payload.Password); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Senha atualizada."})
}

func (h *AuthHandler) fail(c *gin.Context, err error) {
	appErr := mapAuthError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		middleware.Logger(c, h.logger).Error("auth request failed", zap.Error(err))
	}
	writeError(c, appErr)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("WEAK_PASSWORD", "Password must have at least 8 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSession):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}

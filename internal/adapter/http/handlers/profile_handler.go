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

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
	logger  *zap.Logger
}

func NewProfileHandler(uc usecase.IProfileUseCase, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{usecase: uc, logger: logger}
}

// GetProfile godoc
// @Summary      Current account profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.ProfileResponse
// @Security     Bearer
// @Router       /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.usecase.Get(c.Request.Context(), sessionFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(p))
}

// SaveProfile godoc
// @Summary      Save the profile editor fields
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      request.ProfileRequest  true  "profile"
// @Success      200   {object}  response.ProfileResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /profile [put]
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	p, err := h.usecase.Save(c.Request.Context(), sessionFrom(c), payload.ToEntity())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(p))
}

func (h *ProfileHandler) fail(c *gin.Context, err error) {
	appErr := mapProfileError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		middleware.Logger(c, h.logger).Error("profile request failed", zap.Error(err))
	}
	writeError(c, appErr)
}

func mapProfileError(err error) *pkg.AppError {
	if appErr, ok := sessionError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrCompanyNameRequired):
		return pkg.NewDomainErrorSimple("COMPANY_NAME_REQUIRED", "Company name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUnit):
		return pkg.NewDomainErrorSimple("INVALID_UNIT", "Unit must be mm or cm", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}

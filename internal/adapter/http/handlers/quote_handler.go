package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "fiftymais/internal/adapter/http/dto/request"
	response "fiftymais/internal/adapter/http/dto/response"
	"fiftymais/internal/adapter/http/middleware"
	"fiftymais/internal/adapter/persistence/record"
	"fiftymais/internal/domain/entities"
	"fiftymais/internal/metrics"
	"fiftymais/internal/usecase"
	"fiftymais/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler serves the proposal wizard and the proposal list.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, m *metrics.Metrics, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{usecase: uc, metrics: m, logger: logger}
}

// ListQuotes godoc
// @Summary      List quotes
// @Tags         quotes
// @Produce      json
// @Param        status  query  string  false  "nao_enviada | enviada"
// @Param        q       query  string  false  "client name or furniture type"
// @Success      200  {array}   response.QuoteResponse
// @Failure      401  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), sessionFrom(c), usecase.QuoteListFilter{
		Status: c.Query("status"),
		Search: c.Query("q"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteSummaries(list))
}

// GetDraft godoc
// @Summary      Default state for a new quote
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  response.QuoteResponse
// @Security     Bearer
// @Router       /quotes/draft [get]
func (h *QuoteHandler) GetDraft(c *gin.Context) {
	d, err := h.usecase.Draft(c.Request.Context(), sessionFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(d))
}

// PreviewPricing godoc
// @Summary      Subtotal, profit and total for the given costs
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.PricingRequest  true  "costs"
// @Success      200   {object}  response.PricingResponse
// @Security     Bearer
// @Router       /quotes/pricing [post]
func (h *QuoteHandler) PreviewPricing(c *gin.Context) {
	var payload request.PricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPriceBreakdown(h.usecase.Preview(payload.Costs())))
}

// ApplyEnvironmentOp godoc
// @Summary      Apply one environment or piece operation
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.EnvironmentOpRequest  true  "operation"
// @Success      200   {object}  response.EnvironmentsResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/environments [post]
func (h *QuoteHandler) ApplyEnvironmentOp(c *gin.Context) {
	var payload request.EnvironmentOpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	envs, err := h.usecase.ApplyEnvironmentOp(payload.Ambientes, usecase.EnvironmentOp{
		Op:            payload.Op,
		EnvironmentID: payload.AmbienteID,
		Type:          payload.Tipo,
		Details:       payload.Detalhes,
		PieceIndex:    payload.PecaIndex,
		Field:         entities.PieceField(payload.Campo),
		Value:         payload.Valor,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.EnvironmentsResponse{
		Ambientes: envs,
		TipoMovel: entities.DeriveFurnitureType(envs),
	})
}

// FormatPixKey godoc
// @Summary      Mask a PIX key for display
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.PixKeyRequest  true  "key"
// @Success      200   {object}  response.PixKeyResponse
// @Security     Bearer
// @Router       /quotes/pix-key [post]
func (h *QuoteHandler) FormatPixKey(c *gin.Context) {
	var payload request.PixKeyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.PixKeyResponse{Valor: h.usecase.FormatPixKey(payload.Valor, payload.Tipo)})
}

// GetQuote godoc
// @Summary      Get a quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "quote id"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.Get(c.Request.Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// CreateQuote godoc
// @Summary      Save a new quote and mark it sent
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.QuoteRequest  true  "quote"
// @Success      201   {object}  response.QuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	q := payload.ToEntity()
	q.ID = ""
	h.save(c, q, "create", http.StatusCreated)
}

// UpdateQuote godoc
// @Summary      Replace a quote and mark it sent
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "quote id"
// @Param        body  body      request.QuoteRequest  true  "quote"
// @Success      200   {object}  response.QuoteResponse
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/{id} [put]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	q := payload.ToEntity()
	q.ID = c.Param("id")
	h.save(c, q, "update", http.StatusOK)
}

func (h *QuoteHandler) save(c *gin.Context, q entities.Quote, op string, status int) {
	saved, err := h.usecase.SaveAndSend(c.Request.Context(), sessionFrom(c), q)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.metrics.QuoteSaved(op)
	c.JSON(status, response.FromQuote(saved))
}

// UpdateQuoteStatus godoc
// @Summary      Toggle a quote between sent and not sent
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "quote id"
// @Param        body  body      request.QuoteStatusRequest  true  "status"
// @Success      200   {object}  response.QuoteResponse
// @Security     Bearer
// @Router       /quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.QuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	q, err := h.usecase.UpdateStatus(c.Request.Context(), sessionFrom(c), c.Param("id"), payload.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// DeleteQuote godoc
// @Summary      Delete a quote
// @Tags         quotes
// @Param        id   path  string  true  "quote id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), sessionFrom(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportQuotePDF godoc
// @Summary      Download the proposal PDF
// @Tags         quotes
// @Produce      application/pdf
// @Param        id   path  string  true  "quote id"
// @Success      200  {file}  binary
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/{id}/pdf [get]
func (h *QuoteHandler) ExportQuotePDF(c *gin.Context) {
	doc, err := h.usecase.ExportPDF(c.Request.Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}

func (h *QuoteHandler) fail(c *gin.Context, err error) {
	appErr := mapQuoteError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		middleware.Logger(c, h.logger).Error("quote request failed", zap.Error(err))
	}
	writeError(c, appErr)
}

func mapQuoteError(err error) *pkg.AppError {
	if appErr, ok := sessionError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNameRequired):
		return pkg.NewDomainErrorSimple("CLIENT_NAME_REQUIRED", "Client name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientPhoneRequired):
		return pkg.NewDomainErrorSimple("CLIENT_PHONE_REQUIRED", "Client phone is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_STATUS", "Invalid quote status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEnvironmentOp):
		return pkg.NewDomainErrorSimple("INVALID_ENVIRONMENT_OPERATION", "Invalid environment operation", http.StatusBadRequest)
	case errors.Is(err, record.ErrMalformedMeasurements):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "Stored quote could not be read", err, http.StatusInternalServerError)
	default:
		return internalError(err)
	}
}

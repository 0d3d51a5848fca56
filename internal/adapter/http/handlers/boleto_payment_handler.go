package handlers

import (
	"errors"
	"net/http"

	request "clinica_odonto/internal/adapter/http/dto/request"
	response "clinica_odonto/internal/adapter/http/dto/response"
	"clinica_odonto/internal/adapter/http/middleware"
	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase"
	"clinica_odonto/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidBoletoPayload = pkg.NewDomainErrorSimple("INVALID_BOLETO_INPUT", "Dados inválidos para gerar o boleto", http.StatusBadRequest)
)

type BoletoPaymentHandler struct {
	usecase usecase.IBoletoPaymentUseCase
	logger  *zap.Logger
}

func NewBoletoPaymentHandler(uc usecase.IBoletoPaymentUseCase, logger *zap.Logger) *BoletoPaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BoletoPaymentHandler{usecase: uc, logger: logger}
}

// GenerateBoleto godoc
// @Summary  Issue a boleto
// @Tags     boletos
// @Accept   json
// @Produce  json
// @Param    payload  body      request.BoletoPaymentRequest  true  "Boleto"
// @Success  201      {object}  response.BoletoPaymentResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /boletos [post]
func (h *BoletoPaymentHandler) GenerateBoleto(c *gin.Context) {
	var payload request.BoletoPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBoletoPayload.HTTPStatus, errInvalidBoletoPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Generate(c.Request.Context(), payload.ToCommand())
	if err != nil {
		h.logger.Warn("[boleto][handler] generate failed", zap.Error(err))
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	middleware.RecordPaymentProcessed(string(entities.PaymentKindBoleto), string(p.Status))
	c.JSON(http.StatusCreated, response.FromBoletoPayment(p))
}

// ListBoletos godoc
// @Summary  List boletos, newest first
// @Tags     boletos
// @Produce  json
// @Success  200  {array}  response.BoletoPaymentResponse
// @Router   /boletos [get]
func (h *BoletoPaymentHandler) ListBoletos(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBoletoPayments(items))
}

// GetBoleto godoc
// @Summary  Get a boleto
// @Tags     boletos
// @Produce  json
// @Param    id   path      string  true  "Boleto id"
// @Success  200  {object}  response.BoletoPaymentResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /boletos/{id} [get]
func (h *BoletoPaymentHandler) GetBoleto(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBoletoPayment(p))
}

// CheckBoletoStatus godoc
// @Summary  Poll the status of a boleto
// @Tags     boletos
// @Produce  json
// @Param    id   path      string  true  "Boleto id"
// @Success  200  {object}  response.BoletoStatusResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /boletos/{id}/status [get]
func (h *BoletoPaymentHandler) CheckBoletoStatus(c *gin.Context) {
	id := c.Param("id")
	status, err := h.usecase.CheckStatus(c.Request.Context(), id)
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.BoletoStatusResponse{ID: id, Status: string(status)})
}

// PrintBoleto godoc
// @Summary  Printable boleto page
// @Tags     boletos
// @Produce  html
// @Param    id   path      string  true  "Boleto id"
// @Success  200  {string}  string  "HTML"
// @Failure  404  {object}  pkg.HTTPError
// @Router   /boletos/{id}/print [get]
func (h *BoletoPaymentHandler) PrintBoleto(c *gin.Context) {
	page, err := h.usecase.Render(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func mapBoletoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBoletoAmount), errors.Is(err, usecase.ErrInvalidBoletoPayer),
		errors.Is(err, usecase.ErrInvalidPlanReference), errors.Is(err, usecase.ErrInvalidBoletoPaymentID):
		return pkg.NewDomainError("INVALID_REQUEST", "Requisição inválida", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBoletoNotFound):
		return pkg.NewDomainErrorSimple("BOLETO_NOT_FOUND", "Boleto não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBoletoGenerationFailed):
		return pkg.NewDomainError("BOLETO_GENERATION_FAILED", "Erro ao gerar boleto. Tente novamente.", err, http.StatusBadGateway)
	default:
		return mapCommonError(err)
	}
}

package handlers

import (
	"context"
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
	errInvalidPixPayload = pkg.NewDomainErrorSimple("INVALID_PIX_INPUT", "Dados inválidos para gerar o PIX", http.StatusBadRequest)
)

// PixPaymentHandler exposes the PIX charge lifecycle.
type PixPaymentHandler struct {
	usecase usecase.IPixPaymentUseCase
	logger  *zap.Logger
}

func NewPixPaymentHandler(uc usecase.IPixPaymentUseCase, logger *zap.Logger) *PixPaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PixPaymentHandler{usecase: uc, logger: logger}
}

// GeneratePix godoc
// @Summary      Generate a PIX charge
// @Description  Creates a pending PIX charge with its copy-and-paste code and QR image.
// @Tags         pix
// @Accept       json
// @Produce      json
// @Param        payload  body      request.PixPaymentRequest  true  "PIX charge"
// @Success      201      {object}  response.PixPaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /pix [post]
func (h *PixPaymentHandler) GeneratePix(c *gin.Context) {
	var payload request.PixPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPixPayload.HTTPStatus, errInvalidPixPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.GenerateCode(c.Request.Context(), payload.ToCommand())
	if err != nil {
		h.logger.Warn("[pix][handler] generate failed", zap.Error(err))
		appErr := mapPixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	middleware.RecordPaymentProcessed(string(entities.PaymentKindPix), string(p.Status))
	c.JSON(http.StatusCreated, response.FromPixPayment(p))
}

// ListPix godoc
// @Summary  List PIX charges, newest first
// @Tags     pix
// @Produce  json
// @Success  200  {array}   response.PixPaymentResponse
// @Failure  503  {object}  pkg.HTTPError
// @Router   /pix [get]
func (h *PixPaymentHandler) ListPix(c *gin.Context) {
	items, err := h.usecase.ListPayments(c.Request.Context())
	if err != nil {
		appErr := mapPixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPixPayments(items))
}

// GetPix godoc
// @Summary  Get a PIX charge
// @Tags     pix
// @Produce  json
// @Param    id   path      string  true  "PIX payment id"
// @Success  200  {object}  response.PixPaymentResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /pix/{id} [get]
func (h *PixPaymentHandler) GetPix(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPixPayment(p))
}

// CheckPixStatus godoc
// @Summary      Poll the status of a PIX charge
// @Description  Unknown ids are reported with status erro.
// @Tags         pix
// @Produce      json
// @Param        id   path      string  true  "PIX payment id"
// @Success      200  {object}  response.PixStatusResponse
// @Failure      429  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /pix/{id}/status [get]
func (h *PixPaymentHandler) CheckPixStatus(c *gin.Context) {
	id := c.Param("id")
	status, err := h.usecase.CheckStatus(c.Request.Context(), id)
	if err != nil {
		appErr := mapPixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.PixStatusResponse{ID: id, Status: string(status)})
}

// ExpirePix godoc
// @Summary  Expire a pending PIX charge whose window is over
// @Tags     pix
// @Produce  json
// @Param    id   path      string  true  "PIX payment id"
// @Success  200  {object}  response.PixPaymentResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /pix/{id}/expire [post]
func (h *PixPaymentHandler) ExpirePix(c *gin.Context) {
	p, err := h.usecase.Expire(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPixPayment(p))
}

func mapPixError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPixAmount), errors.Is(err, usecase.ErrInvalidPlanReference), errors.Is(err, usecase.ErrInvalidPixPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPixPaymentNotFound):
		return pkg.NewDomainErrorSimple("PIX_PAYMENT_NOT_FOUND", "Pagamento PIX não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPixPaymentNotExpired):
		return pkg.NewDomainErrorSimple("PIX_PAYMENT_NOT_EXPIRED", "O código PIX ainda está dentro da validade", http.StatusConflict)
	case errors.Is(err, usecase.ErrPixGenerationFailed):
		return pkg.NewDomainError("PIX_GENERATION_FAILED", "Erro ao gerar código PIX. Tente novamente.", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPixStatusCheckFailed):
		return pkg.NewDomainError("PIX_STATUS_CHECK_FAILED", "Não foi possível consultar o pagamento PIX", err, http.StatusBadGateway)
	default:
		return mapCommonError(err)
	}
}

// mapCommonError covers failures shared by every payment kind.
func mapCommonError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentStoreUnavailable):
		return pkg.NewDomainError("PAYMENT_STORE_UNAVAILABLE", "Armazenamento de pagamentos indisponível", err, http.StatusServiceUnavailable)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("REQUEST_TIMEOUT", "A operação foi interrompida", err, http.StatusRequestTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

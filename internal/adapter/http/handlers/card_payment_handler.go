package handlers

import (
	"errors"
	"net/http"
	"strconv"

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
	errInvalidCardPayload = pkg.NewDomainErrorSimple("INVALID_CARD_INPUT", "Dados inválidos para o pagamento com cartão", http.StatusBadRequest)
	errInvalidQuoteAmount = pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Informe um valor válido", http.StatusBadRequest)
)

type CardPaymentHandler struct {
	usecase usecase.ICardPaymentUseCase
	logger  *zap.Logger
}

func NewCardPaymentHandler(uc usecase.ICardPaymentUseCase, logger *zap.Logger) *CardPaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CardPaymentHandler{usecase: uc, logger: logger}
}

// ProcessCardPayment godoc
// @Summary      Pay with a credit card
// @Description  Runs the simulated authorization and records the outcome. Card number and CVV are never stored.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CardPaymentRequest  true  "Card payment"
// @Success      201      {object}  response.CardPaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /cards/payments [post]
func (h *CardPaymentHandler) ProcessCardPayment(c *gin.Context) {
	var payload request.CardPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCardPayload.HTTPStatus, errInvalidCardPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.ProcessPayment(c.Request.Context(), payload.ToCommand())
	if err != nil {
		h.logger.Warn("[card][handler] payment failed", zap.Error(err))
		appErr := mapCardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	middleware.RecordPaymentProcessed(string(entities.PaymentKindCard), string(p.Status))
	c.JSON(http.StatusCreated, response.FromCardPayment(p))
}

// ListCardPayments godoc
// @Summary  List card payments, newest first
// @Tags     cards
// @Produce  json
// @Success  200  {array}  response.CardPaymentResponse
// @Router   /cards/payments [get]
func (h *CardPaymentHandler) ListCardPayments(c *gin.Context) {
	items, err := h.usecase.GetHistory(c.Request.Context())
	if err != nil {
		appErr := mapCardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCardPayments(items))
}

// GetCardPayment godoc
// @Summary  Get a card payment
// @Tags     cards
// @Produce  json
// @Param    id   path      string  true  "Card payment id"
// @Success  200  {object}  response.CardPaymentResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /cards/payments/{id} [get]
func (h *CardPaymentHandler) GetCardPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCardPayment(p))
}

// QuoteInstallments godoc
// @Summary  Installment plan for an amount
// @Tags     cards
// @Produce  json
// @Param    amount  query     number  true   "Amount in BRL"
// @Param    brand   query     string  false  "Card brand id"
// @Success  200     {array}   response.InstallmentOptionResponse
// @Failure  400     {object}  pkg.HTTPError
// @Router   /cards/installments [get]
func (h *CardPaymentHandler) QuoteInstallments(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		c.JSON(errInvalidQuoteAmount.HTTPStatus, errInvalidQuoteAmount.ToHTTPError())
		return
	}

	options, err := h.usecase.Quote(c.Request.Context(), amount, entities.CardBrandID(c.Query("brand")))
	if err != nil {
		appErr := mapCardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInstallmentOptions(options))
}

// ValidateCard godoc
// @Summary  Inline check of a typed card number
// @Tags     cards
// @Accept   json
// @Produce  json
// @Param    payload  body      request.CardValidateRequest  true  "Card number"
// @Success  200      {object}  response.CardValidationResponse
// @Router   /cards/validate [post]
func (h *CardPaymentHandler) ValidateCard(c *gin.Context) {
	var payload request.CardValidateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCardPayload.HTTPStatus, errInvalidCardPayload.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCardCheck(h.usecase.ValidateCard(payload.Number)))
}

// ListBrands godoc
// @Summary  Supported card brands
// @Tags     cards
// @Produce  json
// @Success  200  {array}  response.CardBrandResponse
// @Router   /cards/brands [get]
func (h *CardPaymentHandler) ListBrands(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCardBrands(h.usecase.Brands()))
}

func mapCardError(err error) *pkg.AppError {
	var validationErr *usecase.CardValidationError
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("INVALID_CARD_DATA", "Verifique os dados do cartão", http.StatusBadRequest).WithDetails(validationErr.Fields)
	case errors.Is(err, usecase.ErrInvalidCardAmount), errors.Is(err, usecase.ErrInvalidInstallments), errors.Is(err, usecase.ErrInvalidInstallmentAmount),
		errors.Is(err, usecase.ErrInvalidPlanReference), errors.Is(err, usecase.ErrInvalidCardPaymentID),
		errors.Is(err, usecase.ErrUnsupportedCardBrand), errors.Is(err, usecase.ErrInvalidCardData):
		return pkg.NewDomainError("INVALID_REQUEST", "Requisição inválida", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCardPaymentNotFound):
		return pkg.NewDomainErrorSimple("CARD_PAYMENT_NOT_FOUND", "Pagamento com cartão não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCardGatewayFailed):
		return pkg.NewDomainError("CARD_PAYMENT_FAILED", "Erro ao processar pagamento. Tente novamente.", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInstallmentRatesUnavailable):
		return pkg.NewDomainError("INSTALLMENT_QUOTE_FAILED", "Não foi possível calcular o parcelamento", err, http.StatusBadGateway)
	default:
		return mapCommonError(err)
	}
}

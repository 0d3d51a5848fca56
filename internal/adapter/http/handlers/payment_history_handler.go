package handlers

import (
	"net/http"

	response "clinica_odonto/internal/adapter/http/dto/response"
	"clinica_odonto/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentHistoryHandler struct {
	usecase usecase.IPaymentHistoryUseCase
}

func NewPaymentHistoryHandler(uc usecase.IPaymentHistoryUseCase) *PaymentHistoryHandler {
	return &PaymentHistoryHandler{usecase: uc}
}

// ListPayments godoc
// @Summary  Every payment attempt, newest first
// @Tags     payments
// @Produce  json
// @Success  200  {array}   response.PaymentHistoryItem
// @Failure  503  {object}  pkg.HTTPError
// @Router   /payments [get]
func (h *PaymentHistoryHandler) ListPayments(c *gin.Context) {
	items, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapCommonError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentAttempts(items))
}

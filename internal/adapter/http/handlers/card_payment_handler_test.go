package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinica_odonto/internal/adapter/http/handlers/mocks"
	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCardRouter(uc usecase.ICardPaymentUseCase) *gin.Engine {
	h := NewCardPaymentHandler(uc, nil)
	r := gin.New()
	r.POST("/v1/cards/payments", h.ProcessCardPayment)
	r.GET("/v1/cards/payments", h.ListCardPayments)
	r.GET("/v1/cards/payments/:id", h.GetCardPayment)
	r.GET("/v1/cards/installments", h.QuoteInstallments)
	r.POST("/v1/cards/validate", h.ValidateCard)
	r.GET("/v1/cards/brands", h.ListBrands)
	return r
}

const cardPaymentBody = `{
	"card": {"number":"4111111111111111","holder_name":"Maria Silva","expiry":"12/30","cvv":"123","document":"12345678909","email":"maria@example.com"},
	"amount": 100,
	"installments": 3,
	"plan_reference": "essencial"
}`

func TestCardPaymentHandler_ProcessCardPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICardPaymentUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/cards/payments", bytes.NewBufferString(`{"plan_reference":"essencial"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newCardRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("field errors are reported as details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICardPaymentUseCase(ctrl)
		uc.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(entities.CardPayment{}, &usecase.CardValidationError{
			Fields: map[string]string{"number": "Número do cartão inválido.", "cvv": "CVV deve ter 3 ou 4 dígitos."},
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/cards/payments", bytes.NewBufferString(cardPaymentBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newCardRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "INVALID_CARD_DATA" || body.Details["number"] != "Número do cartão inválido." || len(body.Details) != 2 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("rejected payment is still created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICardPaymentUseCase(ctrl)
		uc.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd usecase.ProcessCardCommand) (entities.CardPayment, error) {
			if cmd.Card.Number != "4111111111111111" || cmd.Installments != 3 || cmd.Amount != 100 {
				t.Errorf("unexpected command: %+v", cmd)
			}
			return entities.CardPayment{ID: "cart_test_1", Status: entities.CardStatusRejected, Brand: entities.CardBrandVisa, CreatedAt: handlerNow}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/cards/payments", bytes.NewBufferString(cardPaymentBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newCardRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "rejected" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICardPaymentUseCase(ctrl)
		uc.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(entities.CardPayment{}, usecase.ErrCardGatewayFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/cards/payments", bytes.NewBufferString(cardPaymentBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newCardRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestCardPaymentHandler_QuoteInstallments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("amount is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICardPaymentUseCase(ctrl)

		w := httptest.NewRecorder()
		newCardRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/cards/installments?amount=abc", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICardPaymentUseCase(ctrl)
		uc.EXPECT().Quote(gomock.Any(), 100.0, entities.CardBrandElo).Return([]entities.InstallmentOption{
			{Count: 1, InstallmentAmount: 100, TotalAmount: 100},
			{Count: 2, InstallmentAmount: 50, FeeRatePercent: 2.99, TotalAmount: 102.99},
		}, nil)

		w := httptest.NewRecorder()
		newCardRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/cards/installments?amount=100&brand=elo", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 || body[1]["total_amount"] != 102.99 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unsupported brand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICardPaymentUseCase(ctrl)
		uc.EXPECT().Quote(gomock.Any(), 100.0, entities.CardBrandID("discover")).Return(nil, usecase.ErrUnsupportedCardBrand)

		w := httptest.NewRecorder()
		newCardRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/cards/installments?amount=100&brand=discover", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCardPaymentHandler_ValidateAndBrands(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICardPaymentUseCase(ctrl)
	uc.EXPECT().ValidateCard("4111111111111111").Return(usecase.CardCheck{
		Valid:     true,
		Brand:     entities.LookupCardBrand(entities.CardBrandVisa),
		Formatted: "4111 1111 1111 1111",
	})
	uc.EXPECT().Brands().Return(entities.CardBrands())
	r := newCardRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/v1/cards/validate", bytes.NewBufferString(`{"number":"4111111111111111"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var check map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &check)
	if check["valid"] != true || check["formatted"] != "4111 1111 1111 1111" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/cards/brands", nil))
	var brands []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &brands); err != nil || len(brands) != len(entities.CardBrands()) {
		t.Fatalf("unexpected brands: %s", w.Body.String())
	}
}

func TestCardPaymentHandler_GetCardPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICardPaymentUseCase(ctrl)
	uc.EXPECT().GetByID(gomock.Any(), "cart_test_9").Return(entities.CardPayment{}, usecase.ErrCardPaymentNotFound)
	uc.EXPECT().GetHistory(gomock.Any()).Return([]entities.CardPayment{{ID: "cart_test_1"}}, nil)
	r := newCardRouter(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/cards/payments/cart_test_9", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/cards/payments", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

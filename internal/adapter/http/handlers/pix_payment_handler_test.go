package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinica_odonto/internal/adapter/http/handlers/mocks"
	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase"
	"clinica_odonto/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var handlerNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func newPixRouter(uc usecase.IPixPaymentUseCase) *gin.Engine {
	h := NewPixPaymentHandler(uc, nil)
	r := gin.New()
	r.POST("/v1/pix", h.GeneratePix)
	r.GET("/v1/pix", h.ListPix)
	r.GET("/v1/pix/:id", h.GetPix)
	r.GET("/v1/pix/:id/status", h.CheckPixStatus)
	r.POST("/v1/pix/:id/expire", h.ExpirePix)
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestPixPaymentHandler_GeneratePix(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/pix", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newPixRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		uc.EXPECT().
			GenerateCode(gomock.Any(), usecase.GeneratePixCommand{PlanReference: "profissional", Amount: 90, Description: "Assinatura Profissional"}).
			Return(entities.PixPayment{
				ID:            "PIX_1773576000000_abc123def",
				Amount:        90,
				Status:        entities.PixStatusPendente,
				PlanReference: "profissional",
				PixCode:       "00020126...",
				CreatedAt:     handlerNow,
				ExpiresAt:     handlerNow.Add(entities.PixExpiration),
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/pix", bytes.NewBufferString(`{"plan_reference":"profissional","amount":90,"description":"Assinatura Profissional"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newPixRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "pendente" || body["pix_code"] != "00020126..." {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid amount", usecase.ErrInvalidPixAmount, http.StatusBadRequest, "INVALID_REQUEST"},
		{"generation failed", usecase.ErrPixGenerationFailed, http.StatusBadGateway, "PIX_GENERATION_FAILED"},
		{"store unavailable", fmt.Errorf("%w: %w", usecase.ErrPaymentStoreUnavailable, errors.New("dial tcp")), http.StatusServiceUnavailable, "PAYMENT_STORE_UNAVAILABLE"},
		{"cancelled", context.Canceled, http.StatusRequestTimeout, "REQUEST_TIMEOUT"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPixPaymentUseCase(ctrl)
			uc.EXPECT().GenerateCode(gomock.Any(), gomock.Any()).Return(entities.PixPayment{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/pix", bytes.NewBufferString(`{"plan_reference":"basico","amount":49.9}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			newPixRouter(uc).ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if body := decodeError(t, w); body.Code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, body.Code)
			}
		})
	}
}

func TestPixPaymentHandler_CheckPixStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown id reports erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		uc.EXPECT().CheckStatus(gomock.Any(), "PIX_missing").Return(entities.PixStatusErro, nil)

		w := httptest.NewRecorder()
		newPixRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pix/PIX_missing/status", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"id":"PIX_missing","status":"erro"}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		uc.EXPECT().CheckStatus(gomock.Any(), "PIX_1").Return(entities.PixStatusAprovado, nil)

		w := httptest.NewRecorder()
		newPixRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pix/PIX_1/status", nil))

		if w.Code != http.StatusOK || w.Body.String() != `{"id":"PIX_1","status":"aprovado"}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixPaymentUseCase(ctrl)
		uc.EXPECT().CheckStatus(gomock.Any(), "PIX_1").Return(entities.PixStatus(""), usecase.ErrPixStatusCheckFailed)

		w := httptest.NewRecorder()
		newPixRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pix/PIX_1/status", nil))

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestPixPaymentHandler_ExpirePix(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		ret    entities.PixPayment
		err    error
		status int
	}{
		{"expired", entities.PixPayment{ID: "PIX_1", Status: entities.PixStatusExpirado}, nil, http.StatusOK},
		{"still valid", entities.PixPayment{ID: "PIX_1", Status: entities.PixStatusPendente}, usecase.ErrPixPaymentNotExpired, http.StatusConflict},
		{"not found", entities.PixPayment{}, usecase.ErrPixPaymentNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPixPaymentUseCase(ctrl)
			uc.EXPECT().Expire(gomock.Any(), "PIX_1").Return(tc.ret, tc.err)

			w := httptest.NewRecorder()
			newPixRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/pix/PIX_1/expire", nil))

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestPixPaymentHandler_ListAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPixPaymentUseCase(ctrl)
	uc.EXPECT().ListPayments(gomock.Any()).Return([]entities.PixPayment{
		{ID: "PIX_2", CreatedAt: handlerNow.Add(time.Second)},
		{ID: "PIX_1", CreatedAt: handlerNow},
	}, nil)
	uc.EXPECT().GetByID(gomock.Any(), "PIX_9").Return(entities.PixPayment{}, usecase.ErrPixPaymentNotFound)
	r := newPixRouter(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pix", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var items []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil || len(items) != 2 || items[0]["id"] != "PIX_2" {
		t.Fatalf("unexpected list body: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pix/PIX_9", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

package routes

import (
	"clinica_odonto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing     = "/ping"
	PathPix      = "/pix"
	PathCards    = "/cards"
	PathBoletos  = "/boletos"
	PathPayments = "/payments"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addPixRoutes(rg *gin.RouterGroup, h *handlers.PixPaymentHandler, statusLimit gin.HandlerFunc) {
	pix := rg.Group(PathPix)
	{
		pix.POST("", h.GeneratePix)
		pix.GET("", h.ListPix)
		pix.GET("/:id", h.GetPix)
		pix.GET("/:id/status", statusLimit, h.CheckPixStatus)
		pix.POST("/:id/expire", h.ExpirePix)
	}
}

func addCardRoutes(rg *gin.RouterGroup, h *handlers.CardPaymentHandler) {
	cards := rg.Group(PathCards)
	{
		cards.POST("/payments", h.ProcessCardPayment)
		cards.GET("/payments", h.ListCardPayments)
		cards.GET("/payments/:id", h.GetCardPayment)
		cards.GET("/installments", h.QuoteInstallments)
		cards.POST("/validate", h.ValidateCard)
		cards.GET("/brands", h.ListBrands)
	}
}

func addBoletoRoutes(rg *gin.RouterGroup, h *handlers.BoletoPaymentHandler, statusLimit gin.HandlerFunc) {
	boletos := rg.Group(PathBoletos)
	{
		boletos.POST("", h.GenerateBoleto)
		boletos.GET("", h.ListBoletos)
		boletos.GET("/:id", h.GetBoleto)
		boletos.GET("/:id/status", statusLimit, h.CheckBoletoStatus)
		boletos.GET("/:id/print", h.PrintBoleto)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHistoryHandler) {
	rg.GET(PathPayments, h.ListPayments)
}

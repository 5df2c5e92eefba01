package routes

import (
	"tuition_billing/internal/adapter/http/handlers"
	"tuition_billing/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathPing          = "/ping"
	PathPaymentClaims = "/payment-claims"
	PathVerdicts      = "/verdicts"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

// Student-facing, authenticated.
func addPaymentClaimRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, h *handlers.PaymentClaimHandler) {
	claims := rg.Group(PathPaymentClaims, auth)
	{
		claims.POST("", h.CreatePaymentClaim)
		claims.GET("", h.ListPaymentClaims)
		claims.GET("/:payment_id", h.GetPaymentClaim)
	}
}

// Validator callbacks, machine to machine.
func addVerdictRoutes(rg *gin.RouterGroup, callbackSecret string, h *handlers.VerdictHandler) {
	verdicts := rg.Group(PathVerdicts, middleware.CallbackSecret(callbackSecret))
	{
		verdicts.POST("/proof", h.IngestProofVerdict)
		verdicts.POST("/claims", h.IngestClaimVerdict)
	}
}

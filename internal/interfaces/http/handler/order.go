package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	integrationapp "github.com/gofor360/marketbridge/internal/application/integration"
	"github.com/gofor360/marketbridge/internal/domain/integration"
	"github.com/gofor360/marketbridge/internal/interfaces/http/dto"
	"github.com/gofor360/marketbridge/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
)

// OrderHandler handles order reconciliation API endpoints
type OrderHandler struct {
	BaseHandler
	reconciliationService *integrationapp.OrderReconciliationService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(reconciliationService *integrationapp.OrderReconciliationService) *OrderHandler {
	return &OrderHandler{
		reconciliationService: reconciliationService,
	}
}

// ReconcileOrderRequest is one raw marketplace order as exported by the feed
type ReconcileOrderRequest struct {
	ExternalOrderID         string          `json:"external_order_id" binding:"required"`
	ExternalSKU             string          `json:"external_sku" binding:"required"`
	GrossTotal              decimal.Decimal `json:"gross_total"`
	CustomerEmail           string          `json:"customer_email" binding:"omitempty,email"`
	CustomerPhone           string          `json:"customer_phone"`
	IsAffiliateOrder        bool            `json:"is_affiliate_order"`
	AffiliateCommissionPaid decimal.Decimal `json:"affiliate_commission_paid"`
}

func (r ReconcileOrderRequest) toDomain() integration.RawOrder {
	return integration.RawOrder{
		ExternalOrderID:         r.ExternalOrderID,
		ExternalSKU:             r.ExternalSKU,
		GrossTotal:              r.GrossTotal,
		CustomerEmail:           r.CustomerEmail,
		CustomerPhone:           r.CustomerPhone,
		IsAffiliateOrder:        r.IsAffiliateOrder,
		AffiliateCommissionPaid: r.AffiliateCommissionPaid,
	}
}

// Reconcile handles POST /orders/reconcile
//
// A freshly persisted order answers 201; a skipped order or an idempotent
// replay answers 200 with the discriminating outcome in the body; a
// persistence failure answers 502 so the feed can replay the order later.
func (h *OrderHandler) Reconcile(c *gin.Context) {
	var req ReconcileOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	outcome, err := h.reconciliationService.Reconcile(c.Request.Context(), req.toDomain())
	if err != nil {
		h.BadGateway(c, "Order could not be persisted")
		return
	}

	status := http.StatusOK
	if outcome.Status == integration.OutcomeStatusPersisted && !outcome.Duplicate {
		status = http.StatusCreated
	}
	c.JSON(status, dto.NewSuccessResponse(outcome))
}

// RegisterRoutes registers order reconciliation routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("/reconcile", h.Reconcile)
	}
}

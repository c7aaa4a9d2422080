package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	marketingapp "github.com/gofor360/marketbridge/internal/application/marketing"
	"github.com/gofor360/marketbridge/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
)

// spendDateLayout is the wire format for spend ledger dates
const spendDateLayout = "2006-01-02"

// SpendHandler handles marketing spend ledger API endpoints
type SpendHandler struct {
	BaseHandler
	spendService *marketingapp.SpendLedgerService
}

// NewSpendHandler creates a new SpendHandler
func NewSpendHandler(spendService *marketingapp.SpendLedgerService) *SpendHandler {
	return &SpendHandler{
		spendService: spendService,
	}
}

// RecordSpendRequest is one day of advertising spend
type RecordSpendRequest struct {
	SpendDate  string          `json:"spend_date" binding:"required"`
	GMVMaxCost decimal.Decimal `json:"gmv_max_cost"`
}

// SpendEntryResponse is one recorded spend ledger day
type SpendEntryResponse struct {
	SpendDate  string          `json:"spend_date"`
	GMVMaxCost decimal.Decimal `json:"gmv_max_cost"`
}

// Record handles POST /spend
func (h *SpendHandler) Record(c *gin.Context) {
	var req RecordSpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	date, err := time.Parse(spendDateLayout, req.SpendDate)
	if err != nil {
		h.BadRequest(c, "spend_date must use the format "+spendDateLayout)
		return
	}

	outcome, svcErr := h.spendService.RecordSpend(c.Request.Context(), date, req.GMVMaxCost)
	if svcErr != nil {
		h.BadGateway(c, "Spend entry could not be persisted")
		return
	}

	h.Success(c, outcome)
}

// List handles GET /spend
func (h *SpendHandler) List(c *gin.Context) {
	entries, err := h.spendService.ListSpend(c.Request.Context())
	if err != nil {
		h.BadGateway(c, "Spend ledger could not be read")
		return
	}

	responses := make([]SpendEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, SpendEntryResponse{
			SpendDate:  entry.SpendDate.Format(spendDateLayout),
			GMVMaxCost: entry.GMVMaxCost,
		})
	}

	h.Success(c, responses)
}

// RegisterRoutes registers spend ledger routes
func (h *SpendHandler) RegisterRoutes(rg *gin.RouterGroup) {
	spend := rg.Group("/spend")
	{
		spend.POST("", h.Record)
		spend.GET("", h.List)
	}
}

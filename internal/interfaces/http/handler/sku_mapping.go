package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/gofor360/marketbridge/internal/application/catalog"
	"github.com/gofor360/marketbridge/internal/domain/catalog"
	"github.com/gofor360/marketbridge/internal/interfaces/http/middleware"
)

// SKUMappingHandler handles SKU catalog API endpoints
type SKUMappingHandler struct {
	BaseHandler
	mappingService *catalogapp.SKUMappingService
}

// NewSKUMappingHandler creates a new SKUMappingHandler
func NewSKUMappingHandler(mappingService *catalogapp.SKUMappingService) *SKUMappingHandler {
	return &SKUMappingHandler{
		mappingService: mappingService,
	}
}

// UpsertSKUMappingRequest registers or re-points one mapping
type UpsertSKUMappingRequest struct {
	ExternalSKU string `json:"external_sku" binding:"required"`
	InternalSKU string `json:"internal_sku" binding:"required"`
}

// SKUMappingResponse is one catalog mapping
type SKUMappingResponse struct {
	ExternalSKU string    `json:"external_sku"`
	InternalSKU string    `json:"internal_sku"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toSKUMappingResponse(mapping *catalog.SKUMapping) SKUMappingResponse {
	return SKUMappingResponse{
		ExternalSKU: mapping.ExternalSKU,
		InternalSKU: mapping.InternalSKU,
		UpdatedAt:   mapping.UpdatedAt,
	}
}

// Upsert handles POST /sku-mappings
func (h *SKUMappingHandler) Upsert(c *gin.Context) {
	var req UpsertSKUMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	mapping, err := h.mappingService.Upsert(c.Request.Context(), req.ExternalSKU, req.InternalSKU)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toSKUMappingResponse(mapping))
}

// List handles GET /sku-mappings
func (h *SKUMappingHandler) List(c *gin.Context) {
	mappings, err := h.mappingService.List(c.Request.Context())
	if err != nil {
		h.BadGateway(c, "SKU catalog could not be read")
		return
	}

	responses := make([]SKUMappingResponse, 0, len(mappings))
	for i := range mappings {
		responses = append(responses, toSKUMappingResponse(&mappings[i]))
	}

	h.Success(c, responses)
}

// RegisterRoutes registers SKU catalog routes
func (h *SKUMappingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	mappings := rg.Group("/sku-mappings")
	{
		mappings.POST("", h.Upsert)
		mappings.GET("", h.List)
	}
}

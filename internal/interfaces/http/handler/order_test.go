package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	integrationapp "github.com/gofor360/marketbridge/internal/application/integration"
	"github.com/gofor360/marketbridge/internal/domain/catalog"
	"github.com/gofor360/marketbridge/internal/domain/integration"
	"github.com/gofor360/marketbridge/internal/interfaces/http/dto"
	"github.com/gofor360/marketbridge/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Mock implementations for reconciliation repositories

type mockSKUMappingRepository struct {
	mappings  map[string]*catalog.SKUMapping
	returnErr error
}

func newMockSKUMappingRepository() *mockSKUMappingRepository {
	return &mockSKUMappingRepository{
		mappings: make(map[string]*catalog.SKUMapping),
	}
}

func (m *mockSKUMappingRepository) FindByExternalSKU(ctx context.Context, externalSKU string) (*catalog.SKUMapping, error) {
	if m.returnErr != nil {
		return nil, m.returnErr
	}
	if mapping, ok := m.mappings[externalSKU]; ok {
		return mapping, nil
	}
	return nil, catalog.ErrMappingNotFound
}

func (m *mockSKUMappingRepository) FindAll(ctx context.Context) ([]catalog.SKUMapping, error) {
	if m.returnErr != nil {
		return nil, m.returnErr
	}
	result := make([]catalog.SKUMapping, 0, len(m.mappings))
	for _, mapping := range m.mappings {
		result = append(result, *mapping)
	}
	return result, nil
}

func (m *mockSKUMappingRepository) Save(ctx context.Context, mapping *catalog.SKUMapping) error {
	if m.returnErr != nil {
		return m.returnErr
	}
	m.mappings[mapping.ExternalSKU] = mapping
	return nil
}

func (m *mockSKUMappingRepository) addMapping(t *testing.T, externalSKU, internalSKU string) {
	t.Helper()
	mapping, err := catalog.NewSKUMapping(externalSKU, internalSKU)
	require.NoError(t, err)
	m.mappings[externalSKU] = mapping
}

type mockReconciledOrderRepository struct {
	orders    map[string]*integration.ReconciledOrder
	returnErr error
}

func newMockReconciledOrderRepository() *mockReconciledOrderRepository {
	return &mockReconciledOrderRepository{
		orders: make(map[string]*integration.ReconciledOrder),
	}
}

func (m *mockReconciledOrderRepository) Insert(ctx context.Context, order *integration.ReconciledOrder) (bool, error) {
	if m.returnErr != nil {
		return false, m.returnErr
	}
	if _, exists := m.orders[order.ExternalOrderID]; exists {
		return false, nil
	}
	m.orders[order.ExternalOrderID] = order
	return true, nil
}

func (m *mockReconciledOrderRepository) FindByExternalOrderID(ctx context.Context, externalOrderID string) (*integration.ReconciledOrder, error) {
	if order, ok := m.orders[externalOrderID]; ok {
		return order, nil
	}
	return nil, integration.ErrOrderNotFound
}

func setupOrderRouter(skuRepo *mockSKUMappingRepository, orderRepo *mockReconciledOrderRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
	engine := gin.New()

	service := integrationapp.NewOrderReconciliationService(skuRepo, orderRepo, integration.DefaultPlatformFeeRate, zap.NewNop())
	handler := NewOrderHandler(service)

	api := engine.Group("/api/v1")
	handler.RegisterRoutes(api)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func reconcileBody(orderID string) map[string]any {
	return map[string]any{
		"external_order_id": orderID,
		"external_sku":      "TK-IT-BLUE-S",
		"gross_total":       "45.00",
		"customer_email":    "buyer@example.com",
	}
}

func TestOrderHandler_Reconcile_Persisted(t *testing.T) {
	skuRepo := newMockSKUMappingRepository()
	skuRepo.addMapping(t, "TK-IT-BLUE-S", "SH-BLUE-S")
	orderRepo := newMockReconciledOrderRepository()
	engine := setupOrderRouter(skuRepo, orderRepo)

	w := postJSON(t, engine, "/api/v1/orders/reconcile", reconcileBody("TT-10001"))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "persisted", data["status"])
	assert.Equal(t, "TT-10001", data["external_order_id"])

	stored := orderRepo.orders["TT-10001"]
	require.NotNil(t, stored)
	assert.Equal(t, "SH-BLUE-S", stored.InternalSKU)
	assert.True(t, stored.PlatformFee.Equal(decimal.RequireFromString("2.70")))
	assert.True(t, stored.NetRevenue.Equal(decimal.RequireFromString("42.30")))
}

func TestOrderHandler_Reconcile_DuplicateReplay(t *testing.T) {
	skuRepo := newMockSKUMappingRepository()
	skuRepo.addMapping(t, "TK-IT-BLUE-S", "SH-BLUE-S")
	orderRepo := newMockReconciledOrderRepository()
	engine := setupOrderRouter(skuRepo, orderRepo)

	first := postJSON(t, engine, "/api/v1/orders/reconcile", reconcileBody("TT-10001"))
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, engine, "/api/v1/orders/reconcile", reconcileBody("TT-10001"))
	assert.Equal(t, http.StatusOK, second.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, "persisted", data["status"])
	assert.Equal(t, true, data["duplicate"])
	assert.Len(t, orderRepo.orders, 1)
}

func TestOrderHandler_Reconcile_UnmappedSKU(t *testing.T) {
	skuRepo := newMockSKUMappingRepository()
	orderRepo := newMockReconciledOrderRepository()
	engine := setupOrderRouter(skuRepo, orderRepo)

	w := postJSON(t, engine, "/api/v1/orders/reconcile", reconcileBody("TT-10002"))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, "skipped", data["status"])
	assert.Equal(t, "unmapped_sku", data["reason"])
	assert.Empty(t, orderRepo.orders)
}

func TestOrderHandler_Reconcile_MissingFields(t *testing.T) {
	engine := setupOrderRouter(newMockSKUMappingRepository(), newMockReconciledOrderRepository())

	w := postJSON(t, engine, "/api/v1/orders/reconcile", map[string]any{
		"external_sku": "TK-IT-BLUE-S",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	require.NotEmpty(t, resp.Error.Details)
	assert.Equal(t, "external_order_id", resp.Error.Details[0].Field)
}

func TestOrderHandler_Reconcile_StoreFailure(t *testing.T) {
	skuRepo := newMockSKUMappingRepository()
	skuRepo.addMapping(t, "TK-IT-BLUE-S", "SH-BLUE-S")
	orderRepo := newMockReconciledOrderRepository()
	orderRepo.returnErr = assert.AnError
	engine := setupOrderRouter(skuRepo, orderRepo)

	w := postJSON(t, engine, "/api/v1/orders/reconcile", reconcileBody("TT-10003"))

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeStoreUnavailable, resp.Error.Code)
}

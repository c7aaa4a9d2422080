package persistence

import (
	"context"
	"testing"

	"github.com/gofor360/marketbridge/internal/domain/integration"
	"github.com/gofor360/marketbridge/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupReconciledOrderTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.ReconciledOrderModel{})
	require.NoError(t, err)

	return db
}

func testRawOrder(id string) integration.RawOrder {
	return integration.RawOrder{
		ExternalOrderID:         id,
		ExternalSKU:             "TK-IT-BLUE-S",
		GrossTotal:              decimal.RequireFromString("45.00"),
		CustomerEmail:           "organic_user@gmail.com",
		CustomerPhone:           "+39 331 000000",
		IsAffiliateOrder:        false,
		AffiliateCommissionPaid: decimal.Zero,
	}
}

func TestGormReconciledOrderRepository_Insert(t *testing.T) {
	db := setupReconciledOrderTestDB(t)
	repo := NewGormReconciledOrderRepository(db)
	ctx := context.Background()

	t.Run("inserts new order", func(t *testing.T) {
		raw := testRawOrder("TT-ORG-001")
		fin := integration.DeriveFinancials(raw.GrossTotal, raw.AffiliateCommissionPaid, raw.IsAffiliateOrder, integration.DefaultPlatformFeeRate)
		order := integration.NewReconciledOrder(raw, "SH-BLUE-S", fin)

		inserted, err := repo.Insert(ctx, order)
		require.NoError(t, err)
		assert.True(t, inserted)

		found, err := repo.FindByExternalOrderID(ctx, "TT-ORG-001")
		require.NoError(t, err)
		assert.True(t, found.GrossSales.Equal(decimal.RequireFromString("45.00")))
		assert.True(t, found.PlatformFee.Equal(decimal.RequireFromString("2.70")))
		assert.True(t, found.NetRevenue.Equal(decimal.RequireFromString("42.30")))
		assert.Equal(t, integration.SyncStatusSynced, found.SyncStatus)
	})

	t.Run("replay of same external order ID is a no-op", func(t *testing.T) {
		raw := testRawOrder("TT-ORG-002")
		fin := integration.DeriveFinancials(raw.GrossTotal, raw.AffiliateCommissionPaid, raw.IsAffiliateOrder, integration.DefaultPlatformFeeRate)

		inserted, err := repo.Insert(ctx, integration.NewReconciledOrder(raw, "SH-BLUE-S", fin))
		require.NoError(t, err)
		assert.True(t, inserted)

		// Re-send the same order with a corrected price: the ledger record
		// must not change.
		corrected := raw
		corrected.GrossTotal = decimal.RequireFromString("99.99")
		correctedFin := integration.DeriveFinancials(corrected.GrossTotal, corrected.AffiliateCommissionPaid, corrected.IsAffiliateOrder, integration.DefaultPlatformFeeRate)

		inserted, err = repo.Insert(ctx, integration.NewReconciledOrder(corrected, "SH-BLUE-S", correctedFin))
		require.NoError(t, err)
		assert.False(t, inserted)

		var count int64
		require.NoError(t, db.Model(&models.ReconciledOrderModel{}).Where("external_order_id = ?", "TT-ORG-002").Count(&count).Error)
		assert.Equal(t, int64(1), count)

		found, err := repo.FindByExternalOrderID(ctx, "TT-ORG-002")
		require.NoError(t, err)
		assert.True(t, found.GrossSales.Equal(decimal.RequireFromString("45.00")), "original values must survive the replay")
	})
}

func TestGormReconciledOrderRepository_FindByExternalOrderID_NotFound(t *testing.T) {
	db := setupReconciledOrderTestDB(t)
	repo := NewGormReconciledOrderRepository(db)

	found, err := repo.FindByExternalOrderID(context.Background(), "TT-MISSING")

	assert.Nil(t, found)
	assert.Equal(t, integration.ErrOrderNotFound, err)
}

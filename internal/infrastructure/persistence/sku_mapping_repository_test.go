package persistence

import (
	"context"
	"testing"

	"github.com/gofor360/marketbridge/internal/domain/catalog"
	"github.com/gofor360/marketbridge/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSKUMappingTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.SKUMappingModel{})
	require.NoError(t, err)

	return db
}

func TestGormSKUMappingRepository_FindByExternalSKU(t *testing.T) {
	db := setupSKUMappingTestDB(t)
	repo := NewGormSKUMappingRepository(db)
	ctx := context.Background()

	mapping, err := catalog.NewSKUMapping("TK-IT-BLUE-S", "SH-BLUE-S")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, mapping))

	t.Run("finds existing mapping", func(t *testing.T) {
		found, err := repo.FindByExternalSKU(ctx, "TK-IT-BLUE-S")
		require.NoError(t, err)
		assert.Equal(t, "SH-BLUE-S", found.InternalSKU)
	})

	t.Run("unmapped SKU returns domain sentinel", func(t *testing.T) {
		found, err := repo.FindByExternalSKU(ctx, "TK-UNKNOWN")
		assert.Nil(t, found)
		assert.Equal(t, catalog.ErrMappingNotFound, err)
	})
}

func TestGormSKUMappingRepository_Save_OverwritesExistingExternalSKU(t *testing.T) {
	db := setupSKUMappingTestDB(t)
	repo := NewGormSKUMappingRepository(db)
	ctx := context.Background()

	first, err := catalog.NewSKUMapping("TK-IT-BLUE-M", "SH-BLUE-M")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	// Catalog correction re-points the external SKU
	second, err := catalog.NewSKUMapping("TK-IT-BLUE-M", "SH-BLUE-M-V2")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, second))

	var count int64
	require.NoError(t, db.Model(&models.SKUMappingModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	found, err := repo.FindByExternalSKU(ctx, "TK-IT-BLUE-M")
	require.NoError(t, err)
	assert.Equal(t, "SH-BLUE-M-V2", found.InternalSKU)
}

func TestGormSKUMappingRepository_FindAll(t *testing.T) {
	db := setupSKUMappingTestDB(t)
	repo := NewGormSKUMappingRepository(db)
	ctx := context.Background()

	for _, pair := range [][2]string{
		{"TK-IT-RED-L", "SH-RED-L"},
		{"TK-IT-BLUE-S", "SH-BLUE-S"},
	} {
		mapping, err := catalog.NewSKUMapping(pair[0], pair[1])
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, mapping))
	}

	mappings, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, mappings, 2)

	// Ordered by external SKU ascending
	assert.Equal(t, "TK-IT-BLUE-S", mappings[0].ExternalSKU)
	assert.Equal(t, "TK-IT-RED-L", mappings[1].ExternalSKU)
}

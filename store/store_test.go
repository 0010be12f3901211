package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Daniel-Dotteam/trade-in-front/models"
)

// setupTestStore opens an in-memory SQLite database and migrates all tables.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := OpenWith(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, st.AutoMigrate())

	t.Cleanup(func() { st.Close() })
	return st
}

// seedCatalog creates a collection, a product type beneath it and two
// products (one per sale type).
func seedCatalog(t *testing.T, st *Store) (*models.Collection, *models.ProductType, *models.Product, *models.Product) {
	t.Helper()
	catalog := st.Catalog()

	collection, err := catalog.CreateCollection("Phones", models.SaleTypeList{
		models.SaleTypeForSale, models.SaleTypeForTrade,
	})
	require.NoError(t, err)

	productType, err := catalog.CreateProductType("iPhone", collection.ID)
	require.NoError(t, err)

	forSale, err := catalog.CreateProduct("iPhone 15", 999.99, models.SaleTypeForSale, productType.ID)
	require.NoError(t, err)

	forTrade, err := catalog.CreateProduct("iPhone 12", 350, models.SaleTypeForTrade, productType.ID)
	require.NoError(t, err)

	return collection, productType, forSale, forTrade
}

package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daniel-Dotteam/trade-in-front/models"
)

func TestCollectionRoundTrip(t *testing.T) {
	st := setupTestStore(t)
	collection, productType, forSale, forTrade := seedCatalog(t, st)

	fetched, err := st.Catalog().Collection(collection.ID)
	require.NoError(t, err)

	assert.Equal(t, "Phones", fetched.Name)
	assert.True(t, fetched.ProductSaleTypes.Contains(models.SaleTypeForSale))
	assert.True(t, fetched.ProductSaleTypes.Contains(models.SaleTypeForTrade))

	require.Len(t, fetched.ProductTypes, 1)
	assert.Equal(t, productType.ID, fetched.ProductTypes[0].ID)

	products := fetched.ProductTypes[0].Products
	require.Len(t, products, 2)
	ids := []string{products[0].ID, products[1].ID}
	assert.Contains(t, ids, forSale.ID)
	assert.Contains(t, ids, forTrade.ID)
}

func TestCreateCollectionValidation(t *testing.T) {
	st := setupTestStore(t)
	catalog := st.Catalog()

	_, err := catalog.CreateCollection("", models.SaleTypeList{models.SaleTypeForSale})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = catalog.CreateCollection("Phones", nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateCollection(t *testing.T) {
	st := setupTestStore(t)
	collection, _, _, _ := seedCatalog(t, st)
	catalog := st.Catalog()

	name := "Smartphones"
	updated, err := catalog.UpdateCollection(collection.ID, CollectionUpdate{
		Name:             &name,
		ProductSaleTypes: models.SaleTypeList{models.SaleTypeForTrade},
	})
	require.NoError(t, err)
	assert.Equal(t, "Smartphones", updated.Name)
	assert.Equal(t, models.SaleTypeList{models.SaleTypeForTrade}, updated.ProductSaleTypes)

	_, err = catalog.UpdateCollection("missing", CollectionUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCollectionCascades(t *testing.T) {
	st := setupTestStore(t)
	collection, productType, forSale, _ := seedCatalog(t, st)
	catalog := st.Catalog()

	require.NoError(t, catalog.DeleteCollection(collection.ID))

	_, err := catalog.Collection(collection.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = catalog.ProductType(productType.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = catalog.Product(forSale.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCollectionNotFound(t *testing.T) {
	st := setupTestStore(t)
	assert.ErrorIs(t, st.Catalog().DeleteCollection("missing"), ErrNotFound)
}

func TestCreateProductTypeRequiresCollection(t *testing.T) {
	st := setupTestStore(t)
	catalog := st.Catalog()

	_, err := catalog.CreateProductType("iPhone", "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = catalog.CreateProductType("iPhone", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteProductTypeCascades(t *testing.T) {
	st := setupTestStore(t)
	_, productType, forSale, forTrade := seedCatalog(t, st)
	catalog := st.Catalog()

	require.NoError(t, catalog.DeleteProductType(productType.ID))

	for _, id := range []string{forSale.ID, forTrade.ID} {
		_, err := catalog.Product(id)
		assert.ErrorIs(t, err, ErrNotFound)
	}
}

func TestCreateProductValidation(t *testing.T) {
	st := setupTestStore(t)
	_, productType, _, _ := seedCatalog(t, st)
	catalog := st.Catalog()

	_, err := catalog.CreateProduct("Bad", -1, models.SaleTypeForSale, productType.ID)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = catalog.CreateProduct("Orphan", 10, models.SaleTypeForSale, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	product, err := catalog.CreateProduct("Free", 0, models.SaleTypeForTrade, productType.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, product.Price)
}

func TestProductEagerRelations(t *testing.T) {
	st := setupTestStore(t)
	collection, productType, forSale, _ := seedCatalog(t, st)

	product, err := st.Catalog().Product(forSale.ID)
	require.NoError(t, err)
	require.NotNil(t, product.ProductType)
	assert.Equal(t, productType.ID, product.ProductType.ID)
	require.NotNil(t, product.ProductType.Collection)
	assert.Equal(t, collection.ID, product.ProductType.Collection.ID)
}

func TestSaleTypeFilters(t *testing.T) {
	st := setupTestStore(t)
	collection, productType, forSale, forTrade := seedCatalog(t, st)
	catalog := st.Catalog()

	forTradeType := models.SaleTypeForTrade

	products, err := catalog.ProductsByProductType(productType.ID, &forTradeType)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, forTrade.ID, products[0].ID)

	products, err = catalog.ProductsByCollection(collection.ID, &forTradeType)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, forTrade.ID, products[0].ID)

	products, err = catalog.ProductsByCollection(collection.ID, nil)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	forSaleType := models.SaleTypeForSale
	products, err = catalog.Products(&forSaleType)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, forSale.ID, products[0].ID)

	types, err := catalog.ProductTypesByCollection(collection.ID, &forTradeType)
	require.NoError(t, err)
	require.Len(t, types, 1)
	require.Len(t, types[0].Products, 1)
	assert.Equal(t, forTrade.ID, types[0].Products[0].ID)
}

func TestFilterByMissingParents(t *testing.T) {
	st := setupTestStore(t)
	catalog := st.Catalog()

	_, err := catalog.ProductsByProductType("missing", nil)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = catalog.ProductsByCollection("missing", nil)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = catalog.ProductTypesByCollection("missing", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProductClearsOrderReferences(t *testing.T) {
	st := setupTestStore(t)
	_, _, forSale, forTrade := seedCatalog(t, st)

	order, err := st.Orders().CreateOrder(OrderCreate{
		CustomerName:   "Ana Pop",
		CustomerPhone:  "0712345678",
		SaleProductID:  &forSale.ID,
		TradeProductID: &forTrade.ID,
	})
	require.NoError(t, err)

	require.NoError(t, st.Catalog().DeleteProduct(forTrade.ID))

	fetched, err := st.Orders().Order(order.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.TradeProductID)
	assert.Nil(t, fetched.TradeProduct)
	require.NotNil(t, fetched.SaleProductID)
	assert.Equal(t, forSale.ID, *fetched.SaleProductID)
}

func TestUpdateProduct(t *testing.T) {
	st := setupTestStore(t)
	_, _, forSale, _ := seedCatalog(t, st)
	catalog := st.Catalog()

	price := 899.0
	updated, err := catalog.UpdateProduct(forSale.ID, ProductUpdate{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 899.0, updated.Price)

	badPrice := -5.0
	_, err = catalog.UpdateProduct(forSale.ID, ProductUpdate{Price: &badPrice})
	assert.ErrorIs(t, err, ErrValidation)

	missing := "missing"
	_, err = catalog.UpdateProduct(forSale.ID, ProductUpdate{ProductTypeID: &missing})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestErrorMessagesName(t *testing.T) {
	st := setupTestStore(t)

	_, err := st.Catalog().Collection("missing")
	require.Error(t, err)
	assert.Equal(t, "collection not found", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
}

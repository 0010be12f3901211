package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Daniel-Dotteam/trade-in-front/models"
)

// CatalogStore holds collections, product types and products and enforces the
// parent/child constraints between them.
type CatalogStore struct {
	db *gorm.DB
}

// CollectionUpdate carries the optional fields of an update; nil means "leave
// unchanged".
type CollectionUpdate struct {
	Name             *string
	ProductSaleTypes models.SaleTypeList
}

// ProductTypeUpdate mirrors CollectionUpdate for product types.
type ProductTypeUpdate struct {
	Name         *string
	CollectionID *string
}

// ProductUpdate mirrors CollectionUpdate for products.
type ProductUpdate struct {
	Name          *string
	Price         *float64
	Type          *models.SaleType
	ProductTypeID *string
}

// ---------- Collections ----------

func (s *CatalogStore) CreateCollection(name string, saleTypes models.SaleTypeList) (*models.Collection, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(saleTypes) == 0 {
		return nil, fmt.Errorf("%w: productSaleTypes must not be empty", ErrValidation)
	}
	collection := models.Collection{Name: name, ProductSaleTypes: saleTypes}
	if err := s.db.Create(&collection).Error; err != nil {
		return nil, err
	}
	return s.Collection(collection.ID)
}

func (s *CatalogStore) Collections() ([]models.Collection, error) {
	var collections []models.Collection
	if err := s.db.Preload("ProductTypes.Products").Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

func (s *CatalogStore) Collection(id string) (*models.Collection, error) {
	var collection models.Collection
	err := s.db.Preload("ProductTypes.Products").First(&collection, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("collection %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &collection, nil
}

func (s *CatalogStore) UpdateCollection(id string, update CollectionUpdate) (*models.Collection, error) {
	var collection models.Collection
	err := s.db.First(&collection, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("collection %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		if *update.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		collection.Name = *update.Name
	}
	if update.ProductSaleTypes != nil {
		if len(update.ProductSaleTypes) == 0 {
			return nil, fmt.Errorf("%w: productSaleTypes must not be empty", ErrValidation)
		}
		collection.ProductSaleTypes = update.ProductSaleTypes
	}
	if err := s.db.Save(&collection).Error; err != nil {
		return nil, err
	}
	return s.Collection(id)
}

// DeleteCollection cascades: all product types beneath the collection and all
// of their products are removed in the same transaction.
func (s *CatalogStore) DeleteCollection(id string) error {
	var collection models.Collection
	err := s.db.First(&collection, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("collection %w", ErrNotFound)
	}
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var typeIDs []string
		if err := tx.Model(&models.ProductType{}).
			Where("collection_id = ?", id).
			Pluck("id", &typeIDs).Error; err != nil {
			return err
		}
		if len(typeIDs) > 0 {
			if err := deleteProductsOfTypes(tx, typeIDs); err != nil {
				return err
			}
			if err := tx.Where("collection_id = ?", id).
				Delete(&models.ProductType{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&collection).Error
	})
}

// ---------- Product types ----------

func (s *CatalogStore) CreateProductType(name, collectionID string) (*models.ProductType, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := s.checkCollectionExists(collectionID); err != nil {
		return nil, err
	}
	productType := models.ProductType{Name: name, CollectionID: collectionID}
	if err := s.db.Create(&productType).Error; err != nil {
		return nil, err
	}
	return s.ProductType(productType.ID)
}

func (s *CatalogStore) ProductTypes() ([]models.ProductType, error) {
	var types []models.ProductType
	if err := s.db.Preload("Collection").Preload("Products").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (s *CatalogStore) ProductType(id string) (*models.ProductType, error) {
	var productType models.ProductType
	err := s.db.Preload("Collection").Preload("Products").
		First(&productType, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product type %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &productType, nil
}

// ProductTypesByCollection lists the product types of a collection. When a
// sale type is given, only types that have at least one product of that type
// are of interest to the storefront, but the filter applies to the preloaded
// products rather than the types themselves.
func (s *CatalogStore) ProductTypesByCollection(collectionID string, saleType *models.SaleType) ([]models.ProductType, error) {
	if err := s.checkCollectionExists(collectionID); err != nil {
		return nil, err
	}
	productsScope := func(db *gorm.DB) *gorm.DB {
		if saleType != nil {
			return db.Where("type = ?", *saleType)
		}
		return db
	}
	var types []models.ProductType
	if err := s.db.Preload("Products", productsScope).
		Where("collection_id = ?", collectionID).
		Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (s *CatalogStore) UpdateProductType(id string, update ProductTypeUpdate) (*models.ProductType, error) {
	var productType models.ProductType
	err := s.db.First(&productType, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product type %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		if *update.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		productType.Name = *update.Name
	}
	if update.CollectionID != nil {
		if err := s.checkCollectionExists(*update.CollectionID); err != nil {
			return nil, err
		}
		productType.CollectionID = *update.CollectionID
	}
	if err := s.db.Save(&productType).Error; err != nil {
		return nil, err
	}
	return s.ProductType(id)
}

// DeleteProductType removes the type and all of its products unconditionally.
func (s *CatalogStore) DeleteProductType(id string) error {
	var productType models.ProductType
	err := s.db.First(&productType, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("product type %w", ErrNotFound)
	}
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteProductsOfTypes(tx, []string{id}); err != nil {
			return err
		}
		return tx.Delete(&productType).Error
	})
}

// ---------- Products ----------

func (s *CatalogStore) CreateProduct(name string, price float64, saleType models.SaleType, productTypeID string) (*models.Product, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", ErrValidation)
	}
	if err := s.checkProductTypeExists(productTypeID); err != nil {
		return nil, err
	}
	product := models.Product{
		Name:          name,
		Price:         price,
		Type:          saleType,
		ProductTypeID: productTypeID,
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, err
	}
	return s.Product(product.ID)
}

func (s *CatalogStore) Products(saleType *models.SaleType) ([]models.Product, error) {
	query := s.db.Preload("ProductType.Collection")
	if saleType != nil {
		query = query.Where("type = ?", *saleType)
	}
	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *CatalogStore) Product(id string) (*models.Product, error) {
	var product models.Product
	err := s.db.Preload("ProductType.Collection").First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *CatalogStore) ProductsByProductType(productTypeID string, saleType *models.SaleType) ([]models.Product, error) {
	if err := s.checkProductTypeExists(productTypeID); err != nil {
		return nil, err
	}
	query := s.db.Where("product_type_id = ?", productTypeID)
	if saleType != nil {
		query = query.Where("type = ?", *saleType)
	}
	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ProductsByCollection lists products across all product types of a
// collection. The storefront widget uses this with a sale-type filter.
func (s *CatalogStore) ProductsByCollection(collectionID string, saleType *models.SaleType) ([]models.Product, error) {
	if err := s.checkCollectionExists(collectionID); err != nil {
		return nil, err
	}
	query := s.db.
		Joins("JOIN product_types ON product_types.id = products.product_type_id").
		Where("product_types.collection_id = ?", collectionID)
	if saleType != nil {
		query = query.Where("products.type = ?", *saleType)
	}
	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *CatalogStore) UpdateProduct(id string, update ProductUpdate) (*models.Product, error) {
	var product models.Product
	err := s.db.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		if *update.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		product.Name = *update.Name
	}
	if update.Price != nil {
		if *update.Price < 0 {
			return nil, fmt.Errorf("%w: price must be non-negative", ErrValidation)
		}
		product.Price = *update.Price
	}
	if update.Type != nil {
		product.Type = *update.Type
	}
	if update.ProductTypeID != nil {
		if err := s.checkProductTypeExists(*update.ProductTypeID); err != nil {
			return nil, err
		}
		product.ProductTypeID = *update.ProductTypeID
	}
	if err := s.db.Save(&product).Error; err != nil {
		return nil, err
	}
	return s.Product(id)
}

// DeleteProduct removes the product and nulls out any order that still
// references it, so orders never point at a row that no longer exists.
func (s *CatalogStore) DeleteProduct(id string) error {
	var product models.Product
	err := s.db.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("product %w", ErrNotFound)
	}
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := clearOrderReferences(tx, []string{id}); err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
}

// ---------- helpers ----------

func (s *CatalogStore) checkCollectionExists(id string) error {
	if id == "" {
		return fmt.Errorf("%w: collectionId is required", ErrValidation)
	}
	var count int64
	if err := s.db.Model(&models.Collection{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("collection %w", ErrNotFound)
	}
	return nil
}

func (s *CatalogStore) checkProductTypeExists(id string) error {
	if id == "" {
		return fmt.Errorf("%w: productTypeId is required", ErrValidation)
	}
	var count int64
	if err := s.db.Model(&models.ProductType{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("product type %w", ErrNotFound)
	}
	return nil
}

// deleteProductsOfTypes removes all products of the given types after
// detaching them from orders.
func deleteProductsOfTypes(tx *gorm.DB, typeIDs []string) error {
	var productIDs []string
	if err := tx.Model(&models.Product{}).
		Where("product_type_id IN ?", typeIDs).
		Pluck("id", &productIDs).Error; err != nil {
		return err
	}
	if len(productIDs) == 0 {
		return nil
	}
	if err := clearOrderReferences(tx, productIDs); err != nil {
		return err
	}
	return tx.Where("product_type_id IN ?", typeIDs).Delete(&models.Product{}).Error
}

func clearOrderReferences(tx *gorm.DB, productIDs []string) error {
	if err := tx.Model(&models.Order{}).
		Where("sale_product_id IN ?", productIDs).
		Update("sale_product_id", nil).Error; err != nil {
		return err
	}
	return tx.Model(&models.Order{}).
		Where("trade_product_id IN ?", productIDs).
		Update("trade_product_id", nil).Error
}

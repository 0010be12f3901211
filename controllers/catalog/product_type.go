package catalogcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Daniel-Dotteam/trade-in-front/store"
)

type CreateProductTypeRequest struct {
	Name         string `json:"name" binding:"required"`
	CollectionID string `json:"collectionId" binding:"required"`
}

type UpdateProductTypeRequest struct {
	Name         *string `json:"name"`
	CollectionID *string `json:"collectionId"`
}

func GetProductTypes(s *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		types, err := s.ProductTypes()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, types)
	}
}

func GetProductTypeByID(s *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		productType, err := s.ProductType(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, productType)
	}
}

// GetProductTypesByCollection lists the types of a collection; the optional
// ?type= filter narrows the preloaded products to one sale type.
func GetProductTypesByCollection(s *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, ok := saleTypeFilter(c)
		if !ok {
			return
		}
		types, err := s.ProductTypesByCollection(c.Param("collectionId"), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, types)
	}
}

func CreateProductType(s *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductTypeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		productType, err := s.CreateProductType(req.Name, req.CollectionID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, productType)
	}
}

func UpdateProductType(s *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProductTypeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		productType, err := s.UpdateProductType(c.Param("id"), store.ProductTypeUpdate{
			Name:         req.Name,
			CollectionID: req.CollectionID,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, productType)
	}
}

func DeleteProductType(s *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteProductType(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

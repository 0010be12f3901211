package catalogcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Daniel-Dotteam/trade-in-front/models"
	"github.com/Daniel-Dotteam/trade-in-front/store"
)

type CreateCollectionRequest struct {
	Name             string   `json:"name" binding:"required"`
	ProductSaleTypes []string `json:"productSaleTypes" binding:"required,min=1"`
}

type UpdateCollectionRequest struct {
	Name             *string  `json:"name"`
	ProductSaleTypes []string `json:"productSaleTypes"`
}

// GetCollections returns all collections with their product types and
// products nested.
func GetCollections(s *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		collections, err := s.Collections()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, collections)
	}
}

func GetCollectionByID(s *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		collection, err := s.Collection(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, collection)
	}
}

// GetCollectionProducts lists products anywhere beneath a collection,
// optionally filtered by ?type=. The storefront widget calls this with
// type=FOR_TRADE.
func GetCollectionProducts(s *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, ok := saleTypeFilter(c)
		if !ok {
			return
		}
		products, err := s.ProductsByCollection(c.Param("id"), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func CreateCollection(s *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCollectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		saleTypes, err := models.ParseSaleTypes(req.ProductSaleTypes)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		collection, err := s.CreateCollection(req.Name, saleTypes)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, collection)
	}
}

func UpdateCollection(s *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateCollectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		update := store.CollectionUpdate{Name: req.Name}
		if req.ProductSaleTypes != nil {
			saleTypes, err := models.ParseSaleTypes(req.ProductSaleTypes)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			update.ProductSaleTypes = saleTypes
		}
		collection, err := s.UpdateCollection(c.Param("id"), update)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, collection)
	}
}

func DeleteCollection(s *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteCollection(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

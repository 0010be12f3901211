package catalogcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Daniel-Dotteam/trade-in-front/models"
	"github.com/Daniel-Dotteam/trade-in-front/store"
)

type CreateProductRequest struct {
	Name          string   `json:"name" binding:"required"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
	Type          string   `json:"type" binding:"required"`
	ProductTypeID string   `json:"productTypeId" binding:"required"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Price         *float64 `json:"price"`
	Type          *string  `json:"type"`
	ProductTypeID *string  `json:"productTypeId"`
}

func GetProducts(s *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, ok := saleTypeFilter(c)
		if !ok {
			return
		}
		products, err := s.Products(filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func GetProductByID(s *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := s.Product(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func GetProductsByProductType(s *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, ok := saleTypeFilter(c)
		if !ok {
			return
		}
		products, err := s.ProductsByProductType(c.Param("productTypeId"), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func CreateProduct(s *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		saleType, err := models.ParseSaleType(req.Type)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		product, err := s.CreateProduct(req.Name, *req.Price, saleType, req.ProductTypeID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func UpdateProduct(s *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		update := store.ProductUpdate{
			Name:          req.Name,
			Price:         req.Price,
			ProductTypeID: req.ProductTypeID,
		}
		if req.Type != nil {
			saleType, err := models.ParseSaleType(*req.Type)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			update.Type = &saleType
		}
		product, err := s.UpdateProduct(c.Param("id"), update)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func DeleteProduct(s *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteProduct(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
	}
}

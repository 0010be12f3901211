package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Daniel-Dotteam/trade-in-front/models"
	"github.com/Daniel-Dotteam/trade-in-front/store"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	CustomerName   string  `json:"customerName" binding:"required"`
	CustomerPhone  string  `json:"customerPhone" binding:"required"`
	SaleProductID  *string `json:"saleProductId"`
	TradeProductID *string `json:"tradeProductId"`
}

type UpdateOrderRequest struct {
	CustomerName   *string `json:"customerName"`
	CustomerPhone  *string `json:"customerPhone"`
	SaleProductID  *string `json:"saleProductId"`
	TradeProductID *string `json:"tradeProductId"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrValidation), errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("order store failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// -------- Handlers --------

// CreateOrderHandler is the storefront submit endpoint. New orders start
// PENDING and are broadcast to connected admin websocket clients.
func CreateOrderHandler(s *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := s.CreateOrder(store.OrderCreate{
			CustomerName:   req.CustomerName,
			CustomerPhone:  req.CustomerPhone,
			SaleProductID:  req.SaleProductID,
			TradeProductID: req.TradeProductID,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		broadcastNewOrder(*order)
		c.JSON(http.StatusOK, order)
	}
}

func GetAllOrdersHandler(s *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := s.Orders()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetOrderByIDHandler(s *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := s.Order(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func UpdateOrderHandler(s *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := s.UpdateOrder(c.Param("id"), store.OrderUpdate{
			CustomerName:   req.CustomerName,
			CustomerPhone:  req.CustomerPhone,
			SaleProductID:  req.SaleProductID,
			TradeProductID: req.TradeProductID,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatusHandler moves an order through its lifecycle. Transitions
// out of COMPLETED or CANCELLED are rejected.
func UpdateOrderStatusHandler(s *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := s.UpdateStatus(c.Param("id"), status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func DeleteOrderHandler(s *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteOrder(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"   // order placed, awaiting handling
	OrderStatusCompleted OrderStatus = "COMPLETED" // trade-in finished
	OrderStatusCancelled OrderStatus = "CANCELLED" // rejected or withdrawn
)

// ParseOrderStatus maps a raw string to an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusCompleted):
		return OrderStatusCompleted, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status: " + s)
	}
}

// Terminal reports whether no further status transitions are allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Order pairs a desired sale product with a trade-in product for a customer.
// At least one of the two product references is always set on creation, but a
// reference may become nil later when the product is deleted.
type Order struct {
	ID             string      `gorm:"primaryKey;size:36" json:"id"`
	Reference      string      `gorm:"uniqueIndex" json:"reference"`
	CustomerName   string      `gorm:"not null" json:"customerName"`
	CustomerPhone  string      `gorm:"not null" json:"customerPhone"`
	SaleProductID  *string     `gorm:"size:36;index" json:"saleProductId"`
	SaleProduct    *Product    `gorm:"foreignKey:SaleProductID" json:"saleProduct"`
	TradeProductID *string     `gorm:"size:36;index" json:"tradeProductId"`
	TradeProduct   *Product    `gorm:"foreignKey:TradeProductID" json:"tradeProduct"`
	Status         OrderStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// NewOrderReference builds a human-scannable unique reference, e.g.
// "20250901130500-1b9d6bcd-...".
func NewOrderReference() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleType string

const (
	SaleTypeForSale  SaleType = "FOR_SALE"  // offered to customers
	SaleTypeForTrade SaleType = "FOR_TRADE" // accepted as trade-in
)

// ParseSaleType maps a raw string to a SaleType.
func ParseSaleType(s string) (SaleType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(SaleTypeForSale):
		return SaleTypeForSale, nil
	case string(SaleTypeForTrade):
		return SaleTypeForTrade, nil
	default:
		return "", errors.New("invalid sale type: " + s)
	}
}

// Product is a priced item that is either for sale or accepted as a trade-in.
type Product struct {
	ID            string       `gorm:"primaryKey;size:36" json:"id"`
	Name          string       `gorm:"not null" json:"name"`
	Price         float64      `gorm:"not null" json:"price"`
	Type          SaleType     `gorm:"type:VARCHAR(20);not null" json:"type"`
	ProductTypeID string       `gorm:"not null;index" json:"productTypeId"`
	ProductType   *ProductType `gorm:"foreignKey:ProductTypeID" json:"productType,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductType groups products inside a collection (e.g. "iPhone" under "Phones").
type ProductType struct {
	ID           string      `gorm:"primaryKey;size:36" json:"id"`
	Name         string      `gorm:"not null" json:"name"`
	CollectionID string      `gorm:"not null;index" json:"collectionId"`
	Collection   *Collection `gorm:"foreignKey:CollectionID" json:"collection,omitempty"`
	Products     []Product   `gorm:"foreignKey:ProductTypeID" json:"products"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

func (pt *ProductType) BeforeCreate(tx *gorm.DB) error {
	if pt.ID == "" {
		pt.ID = uuid.NewString()
	}
	return nil
}

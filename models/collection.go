package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleTypeList is stored as a comma-joined string so it works the same on
// Postgres and SQLite.
type SaleTypeList []SaleType

func (l SaleTypeList) Value() (driver.Value, error) {
	parts := make([]string, 0, len(l))
	for _, t := range l {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ","), nil
}

func (l *SaleTypeList) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into SaleTypeList", value)
	}
	if raw == "" {
		*l = nil
		return nil
	}
	var list SaleTypeList
	for _, part := range strings.Split(raw, ",") {
		t, err := ParseSaleType(part)
		if err != nil {
			return err
		}
		list = append(list, t)
	}
	*l = list
	return nil
}

// Contains reports whether the list allows the given sale type.
func (l SaleTypeList) Contains(t SaleType) bool {
	for _, el := range l {
		if el == t {
			return true
		}
	}
	return false
}

// Collection is a top-level catalog grouping (e.g. "Phones") with the set of
// sale types its products may carry.
type Collection struct {
	ID               string        `gorm:"primaryKey;size:36" json:"id"`
	Name             string        `gorm:"not null" json:"name"`
	ProductSaleTypes SaleTypeList  `gorm:"type:text" json:"productSaleTypes"`
	ProductTypes     []ProductType `gorm:"foreignKey:CollectionID" json:"productTypes"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

func (c *Collection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ParseSaleTypes converts raw strings into a SaleTypeList, rejecting unknown
// values and duplicates.
func ParseSaleTypes(raw []string) (SaleTypeList, error) {
	var list SaleTypeList
	for _, s := range raw {
		t, err := ParseSaleType(s)
		if err != nil {
			return nil, err
		}
		if list.Contains(t) {
			return nil, errors.New("duplicate sale type: " + string(t))
		}
		list = append(list, t)
	}
	return list, nil
}

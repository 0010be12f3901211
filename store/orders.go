package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Daniel-Dotteam/trade-in-front/models"
)

// OrderStore holds trade-in orders and enforces the status lifecycle:
// PENDING -> COMPLETED | CANCELLED, terminal once left PENDING.
type OrderStore struct {
	db *gorm.DB
}

// OrderCreate is the validated input of CreateOrder.
type OrderCreate struct {
	CustomerName   string
	CustomerPhone  string
	SaleProductID  *string
	TradeProductID *string
}

// OrderUpdate carries the optional fields of an update; nil means "leave
// unchanged". Status changes go through UpdateStatus instead.
type OrderUpdate struct {
	CustomerName   *string
	CustomerPhone  *string
	SaleProductID  *string
	TradeProductID *string
}

func orderRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("SaleProduct.ProductType.Collection").
		Preload("TradeProduct.ProductType.Collection")
}

func (s *OrderStore) CreateOrder(create OrderCreate) (*models.Order, error) {
	if create.CustomerName == "" {
		return nil, fmt.Errorf("%w: customerName is required", ErrValidation)
	}
	if create.CustomerPhone == "" {
		return nil, fmt.Errorf("%w: customerPhone is required", ErrValidation)
	}
	if create.SaleProductID == nil && create.TradeProductID == nil {
		return nil, fmt.Errorf("%w: at least one of saleProductId or tradeProductId is required", ErrValidation)
	}
	if err := s.checkProductRef(create.SaleProductID, "sale"); err != nil {
		return nil, err
	}
	if err := s.checkProductRef(create.TradeProductID, "trade"); err != nil {
		return nil, err
	}

	order := models.Order{
		Reference:      models.NewOrderReference(),
		CustomerName:   create.CustomerName,
		CustomerPhone:  create.CustomerPhone,
		SaleProductID:  create.SaleProductID,
		TradeProductID: create.TradeProductID,
		Status:         models.OrderStatusPending,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, err
	}
	return s.Order(order.ID)
}

func (s *OrderStore) Orders() ([]models.Order, error) {
	var orders []models.Order
	if err := orderRelations(s.db).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderStore) Order(id string) (*models.Order, error) {
	var order models.Order
	err := orderRelations(s.db).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) UpdateOrder(id string, update OrderUpdate) (*models.Order, error) {
	var order models.Order
	err := s.db.First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if update.CustomerName != nil {
		if *update.CustomerName == "" {
			return nil, fmt.Errorf("%w: customerName must not be empty", ErrValidation)
		}
		order.CustomerName = *update.CustomerName
	}
	if update.CustomerPhone != nil {
		if *update.CustomerPhone == "" {
			return nil, fmt.Errorf("%w: customerPhone must not be empty", ErrValidation)
		}
		order.CustomerPhone = *update.CustomerPhone
	}
	if update.SaleProductID != nil {
		if err := s.checkProductRef(update.SaleProductID, "sale"); err != nil {
			return nil, err
		}
		order.SaleProductID = update.SaleProductID
	}
	if update.TradeProductID != nil {
		if err := s.checkProductRef(update.TradeProductID, "trade"); err != nil {
			return nil, err
		}
		order.TradeProductID = update.TradeProductID
	}
	if order.SaleProductID == nil && order.TradeProductID == nil {
		return nil, fmt.Errorf("%w: at least one of saleProductId or tradeProductId is required", ErrValidation)
	}
	if err := s.db.Save(&order).Error; err != nil {
		return nil, err
	}
	return s.Order(id)
}

// UpdateStatus applies the lifecycle guard: setting the current status again
// is a no-op, any other change is only allowed out of PENDING.
func (s *OrderStore) UpdateStatus(id string, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	err := s.db.First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if order.Status != status {
		if order.Status.Terminal() {
			return nil, fmt.Errorf("%w: order is %s and can no longer change status", ErrConflict, order.Status)
		}
		order.Status = status
		if err := s.db.Save(&order).Error; err != nil {
			return nil, err
		}
	}
	return s.Order(id)
}

// DeleteOrder is unconditional; nothing else references orders.
func (s *OrderStore) DeleteOrder(id string) error {
	result := s.db.Delete(&models.Order{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("order %w", ErrNotFound)
	}
	return nil
}

func (s *OrderStore) checkProductRef(id *string, role string) error {
	if id == nil {
		return nil
	}
	if *id == "" {
		return fmt.Errorf("%w: %s product id must not be empty", ErrValidation, role)
	}
	var count int64
	if err := s.db.Model(&models.Product{}).Where("id = ?", *id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%s product %w", role, ErrNotFound)
	}
	return nil
}

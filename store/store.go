package store

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Daniel-Dotteam/trade-in-front/models"
)

// Store owns the database handle. It is constructed once in main and passed
// into the handlers; Close releases the underlying connection pool.
type Store struct {
	db *gorm.DB
}

// Open connects to Postgres.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// OpenWith connects through an arbitrary GORM dialector. Tests use it with
// in-memory SQLite.
func OpenWith(dialector gorm.Dialector, opts ...gorm.Option) (*Store, error) {
	db, err := gorm.Open(dialector, opts...)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// AutoMigrate creates or updates the catalog and order tables.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.Collection{},
		&models.ProductType{},
		&models.Product{},
		&models.Order{},
	)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Catalog returns the catalog view of the store.
func (s *Store) Catalog() *CatalogStore {
	return &CatalogStore{db: s.db}
}

// Orders returns the order view of the store.
func (s *Store) Orders() *OrderStore {
	return &OrderStore{db: s.db}
}

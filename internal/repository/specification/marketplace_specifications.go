package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByProduct struct {
	ProductID uuid.UUID
}

func (s ByProduct) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("product_id = ?", s.ProductID)
}

type ByUserAndProduct struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
}

func (s ByUserAndProduct) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ? AND product_id = ?", s.UserID, s.ProductID)
}

// NonTerminalStatus selects adoption requests that still block a new one
// for the same (user, pet) pair.
type NonTerminalStatus struct{}

func (s NonTerminalStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", []string{"pending", "approved"})
}

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

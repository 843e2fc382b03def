package domain

import (
	"context"
	"time"

	categorydomain "github.com/tair/bikeshop/internal/category/domain"
	"github.com/tair/bikeshop/pkg/apperrors"
)

// Bike represents a stocked bike model
type Bike struct {
	ID         uint                    `json:"id" gorm:"primaryKey"`
	Name       string                  `json:"name" gorm:"size:100;not null"`
	Price      float64                 `json:"price" gorm:"not null"`
	Stock      int                     `json:"stock" gorm:"not null;default:0"`
	CategoryID uint                    `json:"category_id" gorm:"not null;index"`
	Category   categorydomain.Category `json:"category" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CreatedAt  time.Time               `json:"-"`
	UpdatedAt  time.Time               `json:"-"`
}

// TableName specifies the table name
func (Bike) TableName() string {
	return "bikes"
}

// IsAvailable checks if bike is in stock
func (b *Bike) IsAvailable() bool {
	return b.Stock > 0
}

// ErrBikeNotFound is returned when no bike has the requested id
var ErrBikeNotFound = apperrors.New(apperrors.ErrCodeNotFound, "bike not found")

// BikeRepository defines the contract for bike data access. Every returned
// bike has its Category loaded.
type BikeRepository interface {
	Create(ctx context.Context, bike *Bike) error
	FindByID(ctx context.Context, id uint) (*Bike, error)
	FindAll(ctx context.Context) ([]Bike, error)
	Update(ctx context.Context, bike *Bike) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

// CategoryFinder resolves the category a bike refers to
type CategoryFinder interface {
	FindByID(ctx context.Context, id uint) (*categorydomain.Category, error)
}

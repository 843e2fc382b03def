package domain

import (
	"context"
	"time"

	"github.com/tair/bikeshop/pkg/apperrors"
)

// Category groups bikes under a display name
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:50;not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// Sentinel errors
var (
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeNotFound, "category not found")
	ErrCategoryInUse    = apperrors.New(apperrors.ErrCodeConflict, "category is still referenced by bikes")
)

// CategoryRepository defines the contract for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id uint) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// BikeCounter reports how many bikes reference a category
type BikeCounter interface {
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

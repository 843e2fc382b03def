package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/bikeshop/internal/category/domain"
	"github.com/tair/bikeshop/pkg/database"
)

type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Category{})
}

func (r *GormCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *GormCategoryRepository) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	var category domain.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select category %d: %w", id, err)
	}
	return &category, nil
}

func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	categories := make([]domain.Category, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	return categories, nil
}

// Update renames category. Id 0 is never issued and matches nothing.
func (r *GormCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if category.ID == 0 {
		return domain.ErrCategoryNotFound
	}
	res := r.db.WithContext(ctx).
		Model(&domain.Category{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{"name": category.Name})
	if res.Error != nil {
		return fmt.Errorf("update category %d: %w", category.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// Delete removes the category. A category still referenced by bikes is
// reported as ErrCategoryInUse.
func (r *GormCategoryRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Category{}, id)
	if database.IsForeignKeyViolation(res.Error) {
		return domain.ErrCategoryInUse
	}
	if res.Error != nil {
		return fmt.Errorf("delete category %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *GormCategoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Category{}).Count(&count).Error
	return count, err
}

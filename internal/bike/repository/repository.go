package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/bikeshop/internal/bike/domain"
	categorydomain "github.com/tair/bikeshop/internal/category/domain"
	"github.com/tair/bikeshop/pkg/database"
)

type GormBikeRepository struct {
	db *gorm.DB
}

func NewGormBikeRepository(db *gorm.DB) *GormBikeRepository {
	return &GormBikeRepository{db: db}
}

func (r *GormBikeRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Bike{})
}

// Create inserts bike and reloads it with its category. A dangling
// CategoryID is reported as ErrCategoryNotFound.
func (r *GormBikeRepository) Create(ctx context.Context, bike *domain.Bike) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(bike).Error
	if database.IsForeignKeyViolation(err) {
		return categorydomain.ErrCategoryNotFound
	}
	if err != nil {
		return fmt.Errorf("insert bike: %w", err)
	}
	return r.reload(ctx, bike)
}

func (r *GormBikeRepository) FindByID(ctx context.Context, id uint) (*domain.Bike, error) {
	var bike domain.Bike
	err := r.db.WithContext(ctx).Preload("Category").First(&bike, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrBikeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select bike %d: %w", id, err)
	}
	return &bike, nil
}

func (r *GormBikeRepository) FindAll(ctx context.Context) ([]domain.Bike, error) {
	bikes := make([]domain.Bike, 0)
	if err := r.db.WithContext(ctx).Preload("Category").Order("id ASC").Find(&bikes).Error; err != nil {
		return nil, fmt.Errorf("select bikes: %w", err)
	}
	return bikes, nil
}

// Update writes every scalar column of bike and reloads it. The Category
// association is never written, so CategoryID alone decides the reference.
func (r *GormBikeRepository) Update(ctx context.Context, bike *domain.Bike) error {
	if bike.ID == 0 {
		return domain.ErrBikeNotFound
	}
	res := r.db.WithContext(ctx).
		Model(&domain.Bike{}).
		Where("id = ?", bike.ID).
		Omit(clause.Associations).
		Updates(map[string]any{
			"name":        bike.Name,
			"price":       bike.Price,
			"stock":       bike.Stock,
			"category_id": bike.CategoryID,
		})
	if database.IsForeignKeyViolation(res.Error) {
		return categorydomain.ErrCategoryNotFound
	}
	if res.Error != nil {
		return fmt.Errorf("update bike %d: %w", bike.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrBikeNotFound
	}
	return r.reload(ctx, bike)
}

func (r *GormBikeRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Bike{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete bike %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrBikeNotFound
	}
	return nil
}

func (r *GormBikeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Bike{}).Count(&count).Error
	return count, err
}

func (r *GormBikeRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Bike{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *GormBikeRepository) reload(ctx context.Context, bike *domain.Bike) error {
	fresh, err := r.FindByID(ctx, bike.ID)
	if err != nil {
		return err
	}
	*bike = *fresh
	return nil
}

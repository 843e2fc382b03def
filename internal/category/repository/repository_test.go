package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tair/bikeshop/internal/category/domain"
	"github.com/tair/bikeshop/pkg/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(database.Config{Driver: database.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func newTestRepository(t *testing.T) *GormCategoryRepository {
	t.Helper()
	repo := NewGormCategoryRepository(newTestDB(t))
	require.NoError(t, repo.AutoMigrate())
	return repo
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := &domain.Category{Name: "Горный"}
	second := &domain.Category{Name: "Шоссейный"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	found, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Горный", found.Name)
}

func TestFindByIDNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestFindAllOrderedByID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Create(ctx, &domain.Category{Name: name}))
	}

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{all[0].Name, all[1].Name, all[2].Name})

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestUpdate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	category := &domain.Category{Name: "Горный"}
	require.NoError(t, repo.Create(ctx, category))

	require.NoError(t, repo.Update(ctx, &domain.Category{ID: category.ID, Name: "Городской"}))
	found, err := repo.FindByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Городской", found.Name)

	err = repo.Update(ctx, &domain.Category{ID: 999, Name: "x"})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestUpdateZeroIDIsNotFound(t *testing.T) {
	repo := NewGormCategoryRepository(newTestDB(t))

	err := repo.Update(context.Background(), &domain.Category{Name: "Горный"})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	category := &domain.Category{Name: "BMX"}
	require.NoError(t, repo.Create(ctx, category))

	require.NoError(t, repo.Delete(ctx, category.ID))
	_, err := repo.FindByID(ctx, category.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, category.ID), domain.ErrCategoryNotFound)
}

func TestTracingRepositoryDelegates(t *testing.T) {
	repo := NewTracingCategoryRepository(newTestRepository(t))
	ctx := context.Background()

	category := &domain.Category{Name: "Горный"}
	require.NoError(t, repo.Create(ctx, category))

	found, err := repo.FindByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, category.Name, found.Name)

	_, err = repo.FindByID(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

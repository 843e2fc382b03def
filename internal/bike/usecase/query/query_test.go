package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/bikeshop/internal/bike/domain"
	"github.com/tair/bikeshop/internal/bike/repository"
	categorydomain "github.com/tair/bikeshop/internal/category/domain"
	"github.com/tair/bikeshop/kafka"
	"github.com/tair/bikeshop/pkg/cache"
	"github.com/tair/bikeshop/pkg/database"
)

type mapCache struct {
	items map[string][]byte
	sets  int
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := c.items[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return v, nil
}

func (c *mapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.sets++
	c.items[key] = value
	return nil
}

func (c *mapCache) Delete(context.Context, ...string) error { return nil }
func (c *mapCache) DeletePrefix(context.Context, string) error { return nil }

func newTestRepository(t *testing.T) (domain.BikeRepository, *categorydomain.Category) {
	t.Helper()
	db, err := database.Open(database.Config{Driver: database.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, db.AutoMigrate(&categorydomain.Category{}, &domain.Bike{}))

	category := &categorydomain.Category{Name: "Горный"}
	require.NoError(t, db.Create(category).Error)
	return repository.NewGormBikeRepository(db), category
}

func TestGetBikeCacheAside(t *testing.T) {
	ctx := context.Background()
	repo, category := newTestRepository(t)
	c := &mapCache{items: make(map[string][]byte)}

	bike := &domain.Bike{Name: "Trek 820", Price: 500, Stock: 10, CategoryID: category.ID}
	require.NoError(t, repo.Create(ctx, bike))

	h := NewGetBikeHandler(repo, c, cache.Config{TTL: time.Minute})

	first, err := h.Handle(ctx, GetBikeQuery{ID: bike.ID})
	require.NoError(t, err)
	assert.Equal(t, "Горный", first.Category.Name)
	assert.Contains(t, c.items, cache.Key(kafka.ResourceBike, bike.ID))

	second, err := h.Handle(ctx, GetBikeQuery{ID: bike.ID})
	require.NoError(t, err)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, first.Category.Name, second.Category.Name)
	assert.Equal(t, 1, c.sets)
}

func TestGetBikeNotFound(t *testing.T) {
	repo, _ := newTestRepository(t)
	c := &mapCache{items: make(map[string][]byte)}

	_, err := NewGetBikeHandler(repo, c, cache.Config{}).Handle(context.Background(), GetBikeQuery{ID: 3})
	assert.ErrorIs(t, err, domain.ErrBikeNotFound)
	assert.Empty(t, c.items)
}

func TestListBikes(t *testing.T) {
	ctx := context.Background()
	repo, category := newTestRepository(t)
	h := NewListBikesHandler(repo)

	bikes, err := h.Handle(ctx, ListBikesQuery{})
	require.NoError(t, err)
	assert.Empty(t, bikes)

	for _, name := range []string{"Trek 820", "Stels Navigator"} {
		require.NoError(t, repo.Create(ctx, &domain.Bike{Name: name, Price: 1, CategoryID: category.ID}))
	}

	bikes, err = h.Handle(ctx, ListBikesQuery{})
	require.NoError(t, err)
	require.Len(t, bikes, 2)
	assert.Equal(t, "Trek 820", bikes[0].Name)
	assert.Equal(t, "Горный", bikes[1].Category.Name)
}

//go:build integration
// +build integration

package app

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tair/bikeshop/pkg/database"
)

func setupPostgres(t *testing.T) *database.Config {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("bikeshop"),
		postgres.WithUsername("bikeshop"),
		postgres.WithPassword("bikeshop"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return &database.Config{
		Driver:   database.DriverPostgres,
		Host:     host,
		Port:     port.Port(),
		User:     "bikeshop",
		Password: "bikeshop",
		DBName:   "bikeshop",
		SSLMode:  "disable",
	}
}

func TestPostgresInventoryScenario(t *testing.T) {
	cfg := testConfig()
	cfg.DB = setupPostgres(t)

	application, cleanup, err := InitializeApp(cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	h := application.Handler()

	rec := do(t, h, http.MethodPost, "/categories", `{"name":"Горный"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var category categoryBody
	decode(t, rec, &category)

	rec = do(t, h, http.MethodPost, "/bikes",
		`{"name":"Trek 820","price":500,"stock":10,"category_id":`+strconv.Itoa(int(category.ID))+`}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var bike bikeBody
	decode(t, rec, &bike)
	assert.Equal(t, "Горный", bike.Category)

	rec = do(t, h, http.MethodPut, "/bikes/"+strconv.Itoa(int(bike.ID)), `{"stock":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &bike)
	assert.Equal(t, 3, bike.Stock)

	rec = do(t, h, http.MethodDelete, "/categories/"+strconv.Itoa(int(category.ID)), "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "/bikes/{id}", "200", 15*time.Millisecond, 120)
	m.ObserveRequest("GET", "/bikes/{id}", "404", 5*time.Millisecond, 40)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/bikes/{id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/bikes/{id}", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestsTotal))
}

func TestSetInventory(t *testing.T) {
	m := NewHTTPMetrics(prometheus.NewRegistry())

	m.SetInventory("bike", 3)
	m.SetInventory("bike", 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.InventoryRecords.WithLabelValues("bike")))
}

func TestRegistriesAreIndependent(t *testing.T) {
	require.NotPanics(t, func() {
		NewHTTPMetrics(prometheus.NewRegistry())
		NewHTTPMetrics(prometheus.NewRegistry())
	})

	reg := prometheus.NewRegistry()
	NewHTTPMetrics(reg)
	assert.Panics(t, func() { NewHTTPMetrics(reg) })
}

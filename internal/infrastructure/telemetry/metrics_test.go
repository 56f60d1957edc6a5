package telemetry

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotSleepp/possbien/pkg/config"
	"github.com/NotSleepp/possbien/pkg/logger"
)

func TestMetrics_Ventas(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)

	m.SaleCompleted("efectivo", decimal.NewFromInt(25800))
	m.SaleCompleted("efectivo", decimal.NewFromInt(4200))
	m.SaleCompleted("tarjeta", decimal.NewFromInt(10000))
	m.SaleVoided()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.sales.WithLabelValues("efectivo")))
	assert.Equal(t, 30000.0, testutil.ToFloat64(m.salesAmount.WithLabelValues("efectivo")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.voided))
}

func TestMetrics_HTTP(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)

	m.ObserveHTTP("GET", "/api/productos/:id", 200, 0.012)
	m.ObserveHTTP("GET", "/api/productos/:id", 404, 0.003)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/productos/:id", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.httpDuration))
}

func TestInitTracing_Deshabilitado(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), config.TelemetryConfig{}, logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	m := NewWithRegisterer("salon", prometheus.NewRegistry())

	m.ObserveHTTPRequest("GET", "/api/v1/calendar", 200, 10*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/v1/calendar", 200, 20*time.Millisecond)

	got := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("salon", "GET", "/api/v1/calendar", "200"))
	assert.Equal(t, float64(2), got)
}

func TestMetrics_ObserveDBQuery(t *testing.T) {
	m := NewWithRegisterer("salon", prometheus.NewRegistry())

	m.ObserveDBQuery("SELECT", nil, time.Millisecond)
	m.ObserveDBQuery("SELECT", sql.ErrNoRows, time.Millisecond)
	m.ObserveDBQuery("INSERT", errors.New("boom"), time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.dbQueriesTotal.WithLabelValues("salon", "SELECT", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.dbQueriesTotal.WithLabelValues("salon", "INSERT", "error")))
}

func TestMetrics_SetDBPoolStats(t *testing.T) {
	m := NewWithRegisterer("salon", prometheus.NewRegistry())

	m.SetDBPoolStats(sql.DBStats{OpenConnections: 5, InUse: 2, Idle: 3})

	assert.Equal(t, float64(5), testutil.ToFloat64(m.dbOpenConns.WithLabelValues("salon")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.dbIdleConns.WithLabelValues("salon")))
}

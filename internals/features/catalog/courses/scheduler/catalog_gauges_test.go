package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

func TestCatalogGauges_Refresh(t *testing.T) {
	reg := prometheus.NewRegistry()
	calls := 0
	g, err := NewCatalogGauges(reg,
		Source{Name: "test_courses_upcoming", Help: "upcoming", Count: func(context.Context) (int64, error) { return 3, nil }},
		Source{Name: "test_courses_past", Help: "past", Count: func(context.Context) (int64, error) {
			calls++
			if calls > 1 {
				return 0, errors.New("db down")
			}
			return 7, nil
		}},
	)
	require.NoError(t, err)

	g.Refresh(context.Background())
	assert.Equal(t, float64(3), gaugeValue(t, g.gauges[0]))
	assert.Equal(t, float64(7), gaugeValue(t, g.gauges[1]))

	g.Refresh(context.Background())
	assert.Equal(t, float64(7), gaugeValue(t, g.gauges[1]))
}

func TestCatalogGauges_DuplicateRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	src := Source{Name: "test_dup", Help: "dup", Count: func(context.Context) (int64, error) { return 0, nil }}

	_, err := NewCatalogGauges(reg, src)
	require.NoError(t, err)
	_, err = NewCatalogGauges(reg, src)
	assert.Error(t, err)
}

func TestCatalogGauges_StartRejectsBadSpec(t *testing.T) {
	g, err := NewCatalogGauges(prometheus.NewRegistry())
	require.NoError(t, err)

	_, err = g.Start("not a spec")
	assert.Error(t, err)
}

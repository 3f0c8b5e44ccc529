package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcpos/woocommerce-pos-receipts/internal/application/service"
)

func TestRecorder_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	r.RenderCompleted("logicless", nil)
	r.RenderCompleted("logicless", nil)
	r.RenderCompleted("legacy", errors.New("boom"))
	r.TransformCompleted("zpl")
	r.FiscalFallback(service.FallbackMissingSnapshot)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.renders.WithLabelValues("logicless", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.renders.WithLabelValues("legacy", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.transforms.WithLabelValues("zpl")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.fallbacks.WithLabelValues("missing_snapshot")))
	assert.Equal(t, 4, testutil.CollectAndCount(r.renders)+testutil.CollectAndCount(r.transforms)+testutil.CollectAndCount(r.fallbacks))
}

func TestNewRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	assert.Error(t, err)
}

package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"plasmodocking/pkg/controller"
	"plasmodocking/pkg/logger"
	"plasmodocking/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_RecordsDuration(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	rec := httptest.NewRecorder()
	controller.WithMetrics(mp)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/processes/", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), "http_server_request_duration") {
			found = true
		}
	}
	require.True(t, found, "duration histogram should be exported")
}

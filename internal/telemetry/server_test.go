package telemetry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	metrics.CommandsTotal.WithLabelValues("output").Inc()

	srv := httptest.NewServer(NewRouter(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `termshell_commands_total{result="output"} 1`)

	resp, err = http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestInitTracing(t *testing.T) {
	ctx := context.Background()

	tp, shutdown, err := InitTracing("termshell", "test", "")
	require.NoError(t, err)
	_, span := tp.Tracer("t").Start(ctx, "noop")
	span.End()
	require.NoError(t, shutdown(ctx))

	file := filepath.Join(t.TempDir(), "spans.json")
	tp, shutdown, err = InitTracing("termshell", "test", file)
	require.NoError(t, err)
	_, span = tp.Tracer("t").Start(ctx, "submit")
	span.End()
	require.NoError(t, shutdown(ctx))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Name":"submit"`)
}

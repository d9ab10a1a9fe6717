package handlers_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vango-ui/app"
	"github.com/vango-dev/vango-ui/internal/config"
	"github.com/vango-dev/vango-ui/internal/handlers"
	"github.com/vango-dev/vango-ui/internal/metrics"
	"github.com/vango-dev/vango-ui/internal/site"
	"github.com/vango-dev/vango-ui/pkg/mount"
)

// testConfig creates a minimal config for testing
func testConfig() *config.Config {
	return &config.Config{
		Port:        "8080",
		BaseURL:     "http://localhost:8080",
		Environment: "development",
		AppTitle:    "Test Board",
		MountID:     "app",
	}
}

func testServer(t *testing.T, mountID string) *httptest.Server {
	t.Helper()

	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	m := metrics.New()
	builder := site.New(site.Options{Title: cfg.AppTitle, MountID: mountID, Metrics: m, Logger: logger})

	server := httptest.NewServer(handlers.New(cfg, builder, m, nil, logger).Router())
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHome(t *testing.T) {
	server := testServer(t, "app")

	resp, body := get(t, server.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))

	doc, err := mount.ParseDocument(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, doc.Instances(), 1)
	assert.Equal(t, []string{"/assets/index.css", "/assets/global.css"}, doc.Stylesheets())
	assert.Contains(t, body, "<title>Test Board</title>")
}

func TestHomeServesFreshInstances(t *testing.T) {
	server := testServer(t, "app")

	_, first := get(t, server.URL+"/")
	_, second := get(t, server.URL+"/")

	id := func(body string) string {
		doc, err := mount.ParseDocument(strings.NewReader(body))
		require.NoError(t, err)
		inst := doc.Instances()
		require.Len(t, inst, 1)
		for _, a := range inst[0].Attr {
			if a.Key == mount.AppAttr {
				return a.Val
			}
		}
		return ""
	}
	assert.NotEqual(t, id(first), id(second))
}

func TestAssets(t *testing.T) {
	server := testServer(t, "app")

	for _, href := range []string{"/assets/index.css", "/assets/global.css"} {
		resp, body := get(t, server.URL+href)
		assert.Equal(t, http.StatusOK, resp.StatusCode, href)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/css", href)
		assert.NotEmpty(t, body, href)
	}

	resp, _ := get(t, server.URL+"/assets/missing.css")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	server := testServer(t, "app")

	resp, body := get(t, server.URL+"/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
}

func TestMetrics(t *testing.T) {
	server := testServer(t, "app")

	get(t, server.URL+"/")
	get(t, server.URL+"/health")

	resp, body := get(t, server.URL+"/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `vango_ui_app_mounts_total{result="ok"} 1`)
	assert.Contains(t, body, `vango_ui_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestHomeCustomMountID(t *testing.T) {
	// A board with no columns still mounts.
	board := app.Board{Title: "Empty"}
	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()
	builder := site.New(site.Options{Title: "x", MountID: "root", Board: &board, Metrics: m, Logger: logger})

	w := httptest.NewRecorder()
	handlers.New(cfg, builder, m, nil, logger).Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="root"`)
}

package assets

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLs(t *testing.T) {
	assert.Equal(t, []string{"/assets/index.css", "/assets/global.css"}, URLs())
}

func TestReadFile(t *testing.T) {
	for _, name := range Stylesheets {
		b, err := ReadFile(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, b, name)
	}

	_, err := ReadFile("missing.css")
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/assets/global.css", nil)
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, req)

	resp := w.Result()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")
	assert.Contains(t, string(body), ".app-shell")
}

func TestMerger(t *testing.T) {
	m, err := Merger()
	require.NoError(t, err)
	assert.Equal(t, "surface-sunken", m.Merge("surface-raised surface-sunken"))
	assert.Equal(t, "p-4", m.Merge("p-2 p-4"))
}

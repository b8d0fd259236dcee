package ui

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snplot/adapters/registry"
	"snplot/internal/render"
)

func testServer() *Server {
	gin.SetMode(gin.TestMode)
	reg := registry.NewBuiltin()
	return NewServer(render.NewRenderer(reg, reg))
}

func TestHealth(t *testing.T) {
	s := testServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestLightCurvePreview(t *testing.T) {
	s := testServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plots/lightcurve?pulls=true&model=true", nil)
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}

func TestLightCurvePreview_DataOnly(t *testing.T) {
	s := testServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plots/lightcurve?model=false", nil)
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotZero(t, w.Body.Len())
}

func TestLightCurvePreview_RemovesTempFile(t *testing.T) {
	s := testServer()
	pattern := filepath.Join(os.TempDir(), "snplot-*.png")
	before, err := filepath.Glob(pattern)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plots/lightcurve", nil)
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	after, err := filepath.Glob(pattern)
	require.NoError(t, err)
	assert.Len(t, after, len(before), "preview figure should be removed after serving")
}

func TestPDFPreview(t *testing.T) {
	s := testServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plots/pdfs?cols=2", nil)
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}

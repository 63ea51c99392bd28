package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	httpadapter "github.com/Kornerupin/blur-text/internal/adapters/http"
	redisadapter "github.com/Kornerupin/blur-text/pkg/adapters/redis"
	"github.com/prometheus/client_golang/prometheus"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postDecorate(t *testing.T, handler http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/decorate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) httpadapter.DecorateResponse {
	t.Helper()
	var resp httpadapter.DecorateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestDecorateEndpoint(t *testing.T) {
	handler := httpadapter.NewHandler(prometheus.NewRegistry())

	rec := postDecorate(t, handler, httpadapter.DecorateRequest{
		HTML:     `<p id="t">Hi</p>`,
		Selector: "#t",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, 1, resp.Elements)
	assert.Equal(t, 2, resp.Letters)
	assert.Contains(t, resp.HTML, `<span class="blur-letter tallUp">H</span>`)
}

func TestDecorateEndpointOptions(t *testing.T) {
	handler := httpadapter.NewHandler(prometheus.NewRegistry())

	rec := postDecorate(t, handler, httpadapter.DecorateRequest{
		HTML:     `<p id="t">Z</p>`,
		Selector: "#t",
		Options: map[string]any{
			"charCategories": map[string]any{"tallUp": "Z"},
			"letterClass":    "glyph",
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Contains(t, resp.HTML, `<span class="glyph tallUp">Z</span>`)
}

func TestDecorateEndpointNoMatch(t *testing.T) {
	handler := httpadapter.NewHandler(prometheus.NewRegistry())

	rec := postDecorate(t, handler, httpadapter.DecorateRequest{
		HTML:     `<p>text</p>`,
		Selector: "#missing",
	})

	// Unresolvable targets degrade to a no-op, not an error.
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, 0, resp.Elements)
	assert.Contains(t, resp.HTML, "<p>text</p>")
}

func TestDecorateEndpointValidation(t *testing.T) {
	handler := httpadapter.NewHandler(prometheus.NewRegistry())

	t.Run("missing selector", func(t *testing.T) {
		rec := postDecorate(t, handler, httpadapter.DecorateRequest{HTML: "<p>x</p>"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/decorate", bytes.NewReader([]byte("{")))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDecorateEndpointCache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache := redisadapter.NewFromClient(backend.NewClient(&backend.Options{Addr: mr.Addr()}))
	handler := httpadapter.NewHandler(prometheus.NewRegistry(), httpadapter.WithCache(cache))

	req := httpadapter.DecorateRequest{HTML: `<p id="t">Hi</p>`, Selector: "#t"}

	first := decodeResponse(t, postDecorate(t, handler, req))
	assert.False(t, first.Cached)

	second := decodeResponse(t, postDecorate(t, handler, req))
	assert.True(t, second.Cached)
	assert.Equal(t, first.HTML, second.HTML)
}

func TestHealthz(t *testing.T) {
	handler := httpadapter.NewHandler(prometheus.NewRegistry())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

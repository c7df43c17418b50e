package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/planarkit/planarkit/pkg/cache"
	"github.com/planarkit/planarkit/pkg/graph"
	"github.com/planarkit/planarkit/pkg/graphio"
	"github.com/planarkit/planarkit/pkg/pipeline"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(c, nil, logger)
	t.Cleanup(func() { _ = runner.Close() })
	return New(DefaultConfig(), runner, logger)
}

func completeGraph(n int) *graph.Graph {
	g := graph.New(n)
	for u := range n {
		for v := u + 1; v < n; v++ {
			g.Connect(u, v)
		}
	}
	return g
}

func graphJSON(t *testing.T, g *graph.Graph) json.RawMessage {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteJSON(g, &buf))
	return buf.Bytes()
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "ok", body["status"])
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDPassthrough(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, "upstream-id", rec.Header().Get("X-Request-ID"))
}

func TestEmbedPlanar(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s, "/embed", map[string]any{"graph": graphJSON(t, completeGraph(4))})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Planar    bool            `json:"planar"`
		Faces     int             `json:"faces"`
		Embedding json.RawMessage `json:"embedding"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Planar)
	require.Equal(t, 4, resp.Faces)

	emb, err := graphio.ReadAdjacencyJSON(bytes.NewReader(resp.Embedding))
	require.NoError(t, err)
	require.Equal(t, 4, emb.VertexCount())
}

func TestEmbedNonPlanar(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s, "/embed", map[string]any{"graph": graphJSON(t, completeGraph(5))})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Planar bool   `json:"planar"`
		Reason string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Planar)
	require.NotEmpty(t, resp.Reason)
}

func TestEmbedRejectsBadInput(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/embed", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/embed", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "INVALID_FORMAT", resp.Error.Code)
}

func TestSefeTestVerdicts(t *testing.T) {
	s := newTestServer(t)
	k4 := graphJSON(t, completeGraph(4))

	rec := postJSON(t, s, "/sefe/test", map[string]any{"red": k4, "blue": k4})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Sefe bool `json:"sefe"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Sefe)

	shared := graph.New(6)
	for i := range 6 {
		shared.Connect(i, (i+1)%6)
	}
	shared.Connect(0, 3)
	shared.Connect(1, 4)
	shared.Connect(2, 5)
	sharedJSON := graphJSON(t, shared)

	rec = postJSON(t, s, "/sefe/test", map[string]any{"red": sharedJSON, "blue": sharedJSON})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Sefe)
}

func TestSefeTestRejectsSizeMismatch(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s, "/sefe/test", map[string]any{
		"red":  graphJSON(t, completeGraph(4)),
		"blue": graphJSON(t, completeGraph(5)),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSefeEmbed(t *testing.T) {
	s := newTestServer(t)
	k4 := graphJSON(t, completeGraph(4))
	rec := postJSON(t, s, "/sefe/embed", map[string]any{"red": k4, "blue": k4})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Sefe      bool            `json:"sefe"`
		Embedding json.RawMessage `json:"embedding"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Sefe)

	emb, err := graphio.ReadColoredJSON(bytes.NewReader(resp.Embedding))
	require.NoError(t, err)
	require.Equal(t, 4, emb.VertexCount())
	require.Equal(t, 6, emb.EdgeCount())
}

func TestRenderDOTCaching(t *testing.T) {
	s := newTestServer(t)
	body := map[string]any{"graph": graphJSON(t, completeGraph(4)), "format": "dot"}

	rec := postJSON(t, s, "/render", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/vnd.graphviz", rec.Header().Get("Content-Type"))
	require.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	require.Contains(t, rec.Body.String(), "graph G {")

	rec = postJSON(t, s, "/render", body)
	require.Equal(t, "HIT", rec.Header().Get("X-Cache"))
}

func TestRenderRejectsNonPlanar(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s, "/render", map[string]any{
		"graph":  graphJSON(t, completeGraph(5)),
		"format": "dot",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s, "/render", map[string]any{
		"graph":  graphJSON(t, completeGraph(4)),
		"format": "pdf",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"listen = \":9000\"\n\n[cache]\nbackend = \"file\"\ndir = \"/tmp/planarkit-test\"\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Listen)
	require.Equal(t, "file", cfg.Cache.Backend)
	require.Equal(t, "/tmp/planarkit-test", cfg.Cache.Dir)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestOpenCacheUnknownBackend(t *testing.T) {
	_, err := CacheConfig{Backend: "memcached"}.OpenCache(t.Context())
	require.Error(t, err)
}

package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/planarkit/planarkit/pkg/buildinfo"
	"github.com/planarkit/planarkit/pkg/errors"
	"github.com/planarkit/planarkit/pkg/graph"
	"github.com/planarkit/planarkit/pkg/graphio"
	"github.com/planarkit/planarkit/pkg/pipeline"
)

// maxBodyBytes caps request bodies. Graphs past this size would not embed
// in acceptable time anyway.
const maxBodyBytes = 8 << 20

type embedRequest struct {
	Graph json.RawMessage `json:"graph"`
}

type pairRequest struct {
	Red  json.RawMessage `json:"red"`
	Blue json.RawMessage `json:"blue"`
}

type renderRequest struct {
	Graph     json.RawMessage `json:"graph"`
	Red       json.RawMessage `json:"red"`
	Blue      json.RawMessage `json:"blue"`
	Format    string          `json:"format"`
	ShowOrder bool            `json:"show_order"`
}

type embedResponse struct {
	Planar    bool            `json:"planar"`
	CacheHit  bool            `json:"cache_hit,omitempty"`
	Faces     int             `json:"faces,omitempty"`
	Embedding json.RawMessage `json:"embedding,omitempty"`
	Reason    string          `json:"reason,omitempty"`
}

type sefeTestResponse struct {
	Sefe bool `json:"sefe"`
}

type sefeEmbedResponse struct {
	Sefe      bool            `json:"sefe"`
	CacheHit  bool            `json:"cache_hit,omitempty"`
	Embedding json.RawMessage `json:"embedding,omitempty"`
	Reason    string          `json:"reason,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleEmbed(w http.ResponseWriter, r *http.Request) {
	var req embedRequest
	if !s.decode(w, r, &req) {
		return
	}
	g, err := decodeGraph(req.Graph, "graph")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	emb, hit, err := s.runner.EmbedWithCacheInfo(r.Context(), g)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNotPlanar) {
			writeJSON(w, http.StatusOK, embedResponse{Planar: false, Reason: errors.UserMessage(err)})
			return
		}
		s.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := graphio.WriteAdjacencyJSON(emb.Graph, &buf); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, embedResponse{
		Planar:    true,
		CacheHit:  hit,
		Faces:     emb.CountFaces(),
		Embedding: buf.Bytes(),
	})
}

func (s *Server) handleSefeTest(w http.ResponseWriter, r *http.Request) {
	red, blue, ok := s.decodePair(w, r)
	if !ok {
		return
	}
	verdict, err := s.runner.TestSefe(r.Context(), red, blue)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sefeTestResponse{Sefe: verdict})
}

func (s *Server) handleSefeEmbed(w http.ResponseWriter, r *http.Request) {
	red, blue, ok := s.decodePair(w, r)
	if !ok {
		return
	}
	emb, hit, err := s.runner.SefeWithCacheInfo(r.Context(), red, blue)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNoSefe) {
			writeJSON(w, http.StatusOK, sefeEmbedResponse{Sefe: false, Reason: errors.UserMessage(err)})
			return
		}
		s.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := graphio.WriteColoredJSON(emb, &buf); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sefeEmbedResponse{
		Sefe:      true,
		CacheHit:  hit,
		Embedding: buf.Bytes(),
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !s.decode(w, r, &req) {
		return
	}
	g, err := decodeGraph(req.Graph, "graph")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts := pipeline.RenderOptions{Format: req.Format, ShowOrder: req.ShowOrder}

	data, hit, err := s.runner.RenderWithCacheInfo(r.Context(), g, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeArtifact(w, req.Format, data, hit)
}

func (s *Server) handleSefeRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !s.decode(w, r, &req) {
		return
	}
	red, err := decodeGraph(req.Red, "red")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	blue, err := decodeGraph(req.Blue, "blue")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts := pipeline.RenderOptions{Format: req.Format, ShowOrder: req.ShowOrder}

	data, hit, err := s.runner.RenderSefeWithCacheInfo(r.Context(), red, blue, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeArtifact(w, req.Format, data, hit)
}

// decode reads a JSON request body into dst, reporting malformed input to
// the client. The second return value tells the handler whether to go on.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return false
	}
	return true
}

func (s *Server) decodePair(w http.ResponseWriter, r *http.Request) (*graph.Graph, *graph.Graph, bool) {
	var req pairRequest
	if !s.decode(w, r, &req) {
		return nil, nil, false
	}
	red, err := decodeGraph(req.Red, "red")
	if err != nil {
		s.writeError(w, r, err)
		return nil, nil, false
	}
	blue, err := decodeGraph(req.Blue, "blue")
	if err != nil {
		s.writeError(w, r, err)
		return nil, nil, false
	}
	return red, blue, true
}

func decodeGraph(raw json.RawMessage, field string) (*graph.Graph, error) {
	if len(raw) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "missing %q field", field)
	}
	g, err := graphio.ReadJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "field %q", field)
	}
	return g, nil
}

// statusFor maps error codes to HTTP status codes. The embed and test
// handlers turn negative verdicts into successful responses first; the
// render handlers pass them through, and they map to 422.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeNotPlanar, errors.ErrCodeNoSefe:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestID(r.Context()),
			"err", err)
	}
	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

var contentTypes = map[string]string{
	pipeline.FormatDOT: "text/vnd.graphviz",
	pipeline.FormatSVG: "image/svg+xml",
	pipeline.FormatPNG: "image/png",
}

func writeArtifact(w http.ResponseWriter, format string, data []byte, cacheHit bool) {
	w.Header().Set("Content-Type", contentTypes[format])
	if cacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/creatorlab/canvas/pkg/assets"
	"github.com/creatorlab/canvas/pkg/errors"
	"github.com/creatorlab/canvas/pkg/pipeline"
	"github.com/creatorlab/canvas/pkg/render/sink"
	"github.com/creatorlab/canvas/pkg/scene"
	"github.com/creatorlab/canvas/pkg/template"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type renderResponse struct {
	SceneHash     string         `json:"sceneHash"`
	MissingAssets []string       `json:"missingAssets,omitempty"`
	Artifact      *sink.Artifact `json:"artifact"`
	CacheHit      bool           `json:"cacheHit"`
}

type applyRequest struct {
	Assets      []assets.MediaAsset   `json:"assets"`
	Assignments []template.Assignment `json:"assignments,omitempty"`
}

type applyResponse struct {
	Placements  []scene.Placement     `json:"placements"`
	Assignments []template.Assignment `json:"assignments"`
	Validation  template.Validation   `json:"validation"`
	Status      template.Status       `json:"status"`
}

type dimensionEntry struct {
	Context string `json:"context"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Label   string `json:"label"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, s.runner.Preview)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, s.runner.Export)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, run func(ctx context.Context, opts pipeline.Options) (*pipeline.Result, error)) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing render request"))
		return
	}
	opts.Canvas = s.cfg.Dimensions(opts.Scene.Context)
	opts.Logger = s.logger

	res, err := run(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, renderResponse{
		SceneHash:     res.SceneHash,
		MissingAssets: res.MissingAssets,
		Artifact:      res.Artifact,
		CacheHit:      res.CacheInfo.ArtifactHit,
	})
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, template.Builtin())
}

func (s *Server) handleTemplateApply(w http.ResponseWriter, r *http.Request) {
	tmpl, err := template.ByID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing apply request"))
		return
	}

	assignments := req.Assignments
	if len(assignments) == 0 {
		assignments = template.AutoAssign(tmpl, req.Assets)
	}
	placements := template.Apply(tmpl, assignments)
	s.writeJSON(w, http.StatusOK, applyResponse{
		Placements:  placements,
		Assignments: assignments,
		Validation:  template.Validate(tmpl, assignments),
		Status:      template.StatusOf(tmpl, assignments),
	})
}

func (s *Server) handleDimensions(w http.ResponseWriter, r *http.Request) {
	seen := make(map[string]bool)
	var out []dimensionEntry
	for _, name := range scene.Contexts() {
		d := s.cfg.Dimensions(name)
		out = append(out, dimensionEntry{Context: name, Width: d.Width, Height: d.Height, Label: d.Label})
		seen[name] = true
	}
	for name := range s.cfg.Canvases {
		if seen[name] {
			continue
		}
		d := s.cfg.Dimensions(name)
		out = append(out, dimensionEntry{Context: name, Width: d.Width, Height: d.Height, Label: d.Label})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Context < out[j].Context })
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("writing response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, statusFor(err), errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}

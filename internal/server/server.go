package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/DougMackenzie/power-insight-sub001/pkg/catalog"
	"github.com/DougMackenzie/power-insight-sub001/pkg/spec"
	"github.com/DougMackenzie/power-insight-sub001/pkg/summary"
	"github.com/DougMackenzie/power-insight-sub001/pkg/trajectory"
	"github.com/DougMackenzie/power-insight-sub001/pkg/validation"
)

// Server is the local JSON API consumed by presentation layers. Every
// request loads and resolves its own snapshot of the project, so callers
// editing project.yaml between requests always see consistent output.
type Server struct {
	projectPath string
	port        int
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/spec", s.handleSpec)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/trajectories", s.handleTrajectories)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/catalog", s.handleCatalog)
	mux.HandleFunc("POST /api/solve", s.handleSolve)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("power-insight server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, mux)
}

// load reads the project spec and resolves catalog references.
func (s *Server) load() (*spec.ProjectSpec, trajectory.Inputs, error) {
	ps, err := spec.LoadProject(s.projectPath)
	if err != nil {
		return nil, trajectory.Inputs{}, err
	}
	in, err := catalog.ResolveProject(ps)
	if err != nil {
		return nil, trajectory.Inputs{}, err
	}
	return ps, in, nil
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	ps, _, err := s.load()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, ps)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	ps, _, err := s.load()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	report := validation.ValidateSchema(ps)
	report.Merge(validation.ValidateAnalytical(ps))
	writeJSON(w, report)
}

func (s *Server) handleTrajectories(w http.ResponseWriter, _ *http.Request) {
	_, in, err := s.load()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, trajectory.GenerateAll(in))
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	_, in, err := s.load()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	set := trajectory.GenerateAll(in)
	writeJSON(w, summary.Compute(set, &in.Utility))
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{
		"utilities": catalog.Utilities(),
		"tariffs":   catalog.Tariffs(),
	})
}

// solveOverrides are the slider-style parameters a caller may vary without
// editing the project file.
type solveOverrides struct {
	CapacityMW          *float64 `json:"capacity_mw,omitempty"`
	FlexPeakCoincidence *float64 `json:"flex_peak_coincidence,omitempty"`
	OnsiteGenerationMW  *float64 `json:"onsite_generation_mw,omitempty"`
	Years               *int     `json:"years,omitempty"`
	TariffID            *string  `json:"tariff_id,omitempty"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	ps, _, err := s.load()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var ov solveOverrides
	if err := json.NewDecoder(r.Body).Decode(&ov); err != nil {
		http.Error(w, "invalid overrides: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Overrides apply to this request's snapshot only.
	if ov.CapacityMW != nil {
		ps.DataCenter.CapacityMW = *ov.CapacityMW
	}
	if ov.FlexPeakCoincidence != nil {
		ps.DataCenter.FlexPeakCoincidence = *ov.FlexPeakCoincidence
	}
	if ov.OnsiteGenerationMW != nil {
		ps.DataCenter.OnsiteGenerationMW = *ov.OnsiteGenerationMW
	}
	if ov.Years != nil {
		ps.Projection.Years = *ov.Years
	}
	if ov.TariffID != nil {
		ps.TariffID = *ov.TariffID
	}

	if report := validation.ValidateSchema(ps); !report.Valid {
		w.WriteHeader(http.StatusUnprocessableEntity)
		writeJSON(w, report)
		return
	}

	in, err := catalog.ResolveProject(ps)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	set := trajectory.GenerateAll(in)
	writeJSON(w, map[string]any{
		"trajectories": set,
		"summary":      summary.Compute(set, &in.Utility),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

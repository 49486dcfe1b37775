package api

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"molsim/src/internal/chem"
	"molsim/src/internal/presets"
	"molsim/src/internal/simulator"
	"molsim/src/internal/viewer"
)

// pageData feeds the index template. One instance per request.
type pageData struct {
	SMILES       string
	Style        viewer.Style
	Background   string
	Error        string
	Result       *simulator.Result
	PropertyRows []viewer.Row
	GeometryRows []viewer.Row
	StyleSpec    template.JS
	Presets      []presets.Preset
	Styles       []viewer.StyleOption
	Backgrounds  []string
	ViewerHeight int
}

func (s *Server) newPageData() pageData {
	return pageData{
		Style:        viewer.Normalize(s.Cfg.Viewer.Style),
		Background:   s.Cfg.Viewer.Background,
		Presets:      s.Presets,
		Styles:       viewer.Styles,
		Backgrounds:  viewer.Backgrounds,
		ViewerHeight: s.Cfg.Viewer.Height,
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.newPageData())
}

func (s *Server) handleGenerate(c *gin.Context) {
	data := s.newPageData()
	data.SMILES = c.PostForm("smiles")
	data.Style = viewer.Normalize(c.PostForm("style"))
	if bg := c.PostForm("background"); viewer.ValidBackground(bg) {
		data.Background = bg
	}

	if data.SMILES == "" {
		data.Error = "Please enter a SMILES string."
		c.HTML(http.StatusOK, "index.html", data)
		return
	}

	res, err := s.Sim.Simulate(simulator.Request{SMILES: data.SMILES})
	if err != nil {
		data.Error = userMessage(err)
		slog.Info("generation failed", "request_id", c.GetString("request_id"), "smiles", data.SMILES, "error", err)
		c.HTML(http.StatusOK, "index.html", data)
		return
	}

	spec, err := viewer.SceneSpec(data.Style)
	if err != nil {
		data.Error = userMessage(err)
		c.HTML(http.StatusInternalServerError, "index.html", data)
		return
	}

	data.Result = res
	data.PropertyRows = viewer.PropertyRows(res.Properties)
	data.GeometryRows = viewer.GeometryRows(res.Geometry)
	data.StyleSpec = spec
	c.HTML(http.StatusOK, "index.html", data)
}

type structureRequest struct {
	SMILES        string `json:"smiles" binding:"required"`
	Style         string `json:"style,omitempty"`
	Seed          *int   `json:"seed,omitempty"`
	MaxIterations *int   `json:"max_iterations,omitempty"`
	IncludeSVG    bool   `json:"include_svg,omitempty"`
}

func (s *Server) handleStructure(c *gin.Context) {
	var req structureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.Sim.Simulate(simulator.Request{
		SMILES:        req.SMILES,
		Seed:          req.Seed,
		MaxIterations: req.MaxIterations,
		IncludeSVG:    req.IncludeSVG,
	})
	if err != nil {
		status, kind := errorStatus(err)
		slog.Info("structure request failed", "request_id", c.GetString("request_id"), "smiles", req.SMILES, "kind", kind, "error", err)
		c.JSON(status, gin.H{"error": userMessage(err), "kind": kind})
		return
	}

	style := viewer.Normalize(req.Style)
	spec, err := viewer.SceneSpec(style)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":     res,
		"style":      style,
		"style_spec": string(spec),
	})
}

func (s *Server) handlePresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": s.Presets})
}

func (s *Server) handleStyles(c *gin.Context) {
	styles := make([]gin.H, 0, len(viewer.Styles))
	for _, st := range viewer.Styles {
		styles = append(styles, gin.H{"id": st.ID, "name": st.Name})
	}
	c.JSON(http.StatusOK, gin.H{
		"styles":      styles,
		"backgrounds": viewer.Backgrounds,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"toolkit": s.Toolkit.Version(),
	})
}

// userMessage renders the two user-visible error kinds; anything else gets
// a generic message so internals stay off the page.
func userMessage(err error) string {
	var perr *chem.ParseError
	var eerr *chem.EmbeddingError
	switch {
	case errors.As(err, &perr):
		return "Invalid SMILES notation. Please check the input and try again."
	case errors.As(err, &eerr):
		return "A 3D structure could not be generated for this molecule."
	default:
		return "Structure generation failed. Please try again."
	}
}

func errorStatus(err error) (int, string) {
	var perr *chem.ParseError
	var eerr *chem.EmbeddingError
	switch {
	case errors.As(err, &perr):
		return http.StatusBadRequest, "parse"
	case errors.As(err, &eerr):
		return http.StatusUnprocessableEntity, "embedding"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

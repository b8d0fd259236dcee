package ui

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"snplot/internal/logging"
	"snplot/internal/render"
	"snplot/internal/testkit"
)

// Server is the browser preview surface: it renders demo or supplied
// light-curve figures on demand, standing in for an interactive display.
type Server struct {
	router   *gin.Engine
	renderer *render.Renderer
	kit      *testkit.Generator
}

// NewServer creates a preview server over the given renderer.
func NewServer(renderer *render.Renderer) *Server {
	s := &Server{
		router:   gin.Default(),
		renderer: renderer,
		kit:      testkit.NewGenerator(1),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/plots/lightcurve", s.handleLightCurve)
	s.router.GET("/plots/pdfs", s.handlePDFs)
}

// Router exposes the underlying handler for tests.
func (s *Server) Router() http.Handler { return s.router }

// Run starts the server on the given address.
func (s *Server) Run(addr string) error {
	logging.Default.Info("preview server listening on %s", addr)
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleLightCurve renders the demo light curve. Query params: pulls (bool),
// model (bool), modelerr (bool).
func (s *Server) handleLightCurve(c *gin.Context) {
	reg := testkit.DemoRegistry()
	demoModel := testkit.DemoModel(reg, 55100)
	batch := s.kit.Batch(demoModel, testkit.DemoBands(), 25, 0.1)

	opts := render.LightCurveOptions{
		ShowPulls:         boolQuery(c, "pulls", true),
		IncludeModelError: boolQuery(c, "modelerr", false),
	}
	if boolQuery(c, "model", true) {
		opts.Model = demoModel
	}

	path, err := s.renderer.PlotLightCurve(batch, opts)
	if err != nil {
		logging.Default.Error("light curve render failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	serveFigure(c, path)
}

// handlePDFs renders the demo posterior histogram grid. Query param: cols.
func (s *Server) handlePDFs(c *gin.Context) {
	set := s.kit.Posterior(
		[]string{"t0", "amplitude", "rise", "fall"},
		[]float64{55100, 1.0, 5, 20},
		[]float64{0.4, 0.05, 0.3, 1.2},
		2000,
	)
	summaries, err := set.Summaries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cols, _ := strconv.Atoi(c.DefaultQuery("cols", "2"))
	path, err := s.renderer.PlotPDFs(set, summaries, render.PDFOptions{Cols: cols})
	if err != nil {
		logging.Default.Error("pdf render failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	serveFigure(c, path)
}

// serveFigure sends a rendered figure and removes it; previews are one-shot
// temp files, not artifacts.
func serveFigure(c *gin.Context, path string) {
	c.File(path)
	if err := os.Remove(path); err != nil {
		logging.Default.Warn("failed to remove preview file %s: %v", path, err)
	}
}

func boolQuery(c *gin.Context, name string, fallback bool) bool {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

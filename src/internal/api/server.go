package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"molsim/src/internal/chem"
	"molsim/src/internal/config"
	"molsim/src/internal/presets"
	"molsim/src/internal/simulator"
	"molsim/src/internal/viewer"
)

type Server struct {
	Cfg     *config.Config
	Sim     *simulator.Simulator
	Toolkit chem.Toolkit
	Presets []presets.Preset
	Engine  *gin.Engine
}

func NewServer(cfg *config.Config, sim *simulator.Simulator, tk chem.Toolkit, catalog []presets.Preset) *Server {
	e := gin.Default()
	e.SetHTMLTemplate(viewer.Template())

	s := &Server{
		Cfg:     cfg,
		Sim:     sim,
		Toolkit: tk,
		Presets: catalog,
		Engine:  e,
	}
	s.Engine.Use(s.corsMiddleware())
	s.Engine.Use(s.requestIDMiddleware())
	s.Engine.Use(s.authMiddleware())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.Engine.GET("/", s.handleIndex)
	s.Engine.POST("/", s.handleGenerate)

	v1 := s.Engine.Group("/api/v1")
	{
		v1.POST("/structure", s.handleStructure)
		v1.GET("/presets", s.handlePresets)
		v1.GET("/styles", s.handleStyles)
		v1.GET("/health", s.handleHealth)
	}
}

func (s *Server) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Server-Key")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// authMiddleware gates the JSON API behind the optional server key. The
// page itself and the health endpoint stay public.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := s.Cfg.Server.Key
		if key == "" {
			c.Next()
			return
		}
		path := c.Request.URL.Path
		if !strings.HasPrefix(path, "/api/v1") || path == "/api/v1/health" {
			c.Next()
			return
		}
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		if provided := c.GetHeader("X-Server-Key"); provided != key {
			slog.Warn("unauthorized request", "path", path, "remote", c.ClientIP(), "provided", provided != "")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing server key"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) Run(addr string) error {
	return s.Engine.Run(addr)
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Engine,
		ReadHeaderTimeout: 60 * time.Second,
		ReadTimeout:       300 * time.Second,
		WriteTimeout:      300 * time.Second,
		IdleTimeout:       600 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed && err != nil {
			slog.Error("server ListenAndServe error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server...")

	ctxShut, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server graceful shutdown error", "error", err)
	}

	slog.Info("server stopped")

	return nil
}

package server

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/victorhprada/excel-automation/internal/api"
	"github.com/victorhprada/excel-automation/internal/config"
	"github.com/victorhprada/excel-automation/internal/service/session"
)

//go:embed static
var staticFiles embed.FS

// Server is the HTTP server for the validation tool.
type Server struct {
	router   *gin.Engine
	sessions *session.Store
	handler  *api.Handler
}

// NewServer builds the server: session store, API handler, routes and
// the embedded form page.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions := session.NewStore()
	handler := api.NewHandler(sessions, cfg.MaxUploadBytes())

	s := &Server{
		router:   gin.Default(),
		sessions: sessions,
		handler:  handler,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// API routes, session resolved from the cookie
	apiGroup := s.router.Group("/api")
	apiGroup.Use(s.handler.SessionMiddleware())
	s.handler.RegisterRoutes(apiGroup)

	// The form page is a single embedded file
	sub, _ := fs.Sub(staticFiles, "static")

	s.router.GET("/", func(c *gin.Context) {
		data, err := fs.ReadFile(sub, "index.html")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})

	s.router.NoRoute(func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Sessions exposes the session store (used by tests).
func (s *Server) Sessions() *session.Store {
	return s.sessions
}

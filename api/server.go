package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/AntonioChieffallo/Student-Grade-Manager/core"
	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
)

type ServerConfig struct {
	Logger     log.Logger
	ListenAddr string
}

// Server exposes a ledger over HTTP. The ledger is not safe for concurrent
// use, so every handler holds mu while it touches it.
type Server struct {
	ServerConfig

	mu     sync.Mutex
	ledger *core.Ledger
	http   *http.Server
}

func NewServer(cfg ServerConfig, ledger *core.Ledger) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.NewNopLogger()
	}

	s := &Server{
		ServerConfig: cfg,
		ledger:       ledger,
	}
	s.http = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.Logger.Log("msg", "JSON API server running", "addr", s.ListenAddr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler builds the router. The gin mode is left to the caller.
func (s *Server) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), s.logRequests())

	router.GET("/health", s.healthCheck)
	router.GET("/gpa", s.getGPA)

	courses := router.Group("/courses")
	{
		courses.GET("", s.getReport)
		courses.POST("", s.addCourse)
		courses.DELETE("", s.clearAll)
		courses.GET("/:name", s.getCourse)
		courses.DELETE("/:name", s.removeCourse)
		courses.POST("/:name/grades", s.addGrade)
		courses.GET("/:name/projection", s.getProjection)
	}

	return router
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.Logger.Log(
			"msg", "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}

// withLedger runs fn while holding the ledger lock.
func (s *Server) withLedger(fn func(l *core.Ledger)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ledger)
}

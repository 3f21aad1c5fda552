// Package server serves the dashboard and the ranking API over HTTP for
// local preview.
package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/davetashner/parkheat/internal/dashboard"
	"github.com/davetashner/parkheat/internal/output"
	"github.com/davetashner/parkheat/internal/parks"
	"github.com/davetashner/parkheat/internal/rank"
)

// DefaultAddr is the listen address used when Config.Addr is empty.
const DefaultAddr = ":8080"

// Config configures a Server.
type Config struct {
	Addr      string
	Dashboard dashboard.Options
	TopN      int
	RunID     string
}

// Server bundles the router, the loaded dataset and a private metrics
// registry.
type Server struct {
	cfg      Config
	records  []parks.Record
	engine   *gin.Engine
	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

// New constructs a server with routes and middleware. records is not
// copied and must not be modified while the server runs.
func New(cfg Config, records []parks.Record) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		cfg:      cfg,
		records:  records,
		engine:   engine,
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "parkheat",
			Name:      "http_requests_total",
			Help:      "HTTP requests by matched route and status code.",
		}, []string{"route", "code"}),
	}
	s.registry.MustRegister(s.requests, collectors.NewGoCollector())

	engine.Use(s.observe())
	s.registerRoutes()
	return s
}

// ServeHTTP delegates to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// Run starts the HTTP server and blocks until ctx is canceled or the
// listener fails.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("preview server listening", "addr", s.cfg.Addr, "parks", len(s.records))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.handleDashboard)
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/api/parks", s.handleParks)
	s.engine.GET("/api/rank", s.handleRank)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
}

// observe counts requests and logs them at debug level.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		code := c.Writer.Status()
		s.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
		slog.Debug("request", "method", c.Request.Method, "path", c.Request.URL.Path,
			"status", code, "duration", time.Since(start))
	}
}

func (s *Server) ranking(label string, top int) (output.Ranking, error) {
	entries, err := rank.By(s.records, label)
	if err != nil {
		return output.Ranking{}, err
	}
	return output.Ranking{
		Label:   label,
		Entries: rank.Top(entries, top),
		Records: s.records,
		RunID:   s.cfg.RunID,
	}, nil
}

func (s *Server) handleDashboard(c *gin.Context) {
	r, err := s.ranking(parks.AverageLabel, s.cfg.TopN)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := output.NewHTMLFormatter(s.cfg.Dashboard).Format(r, &buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleParks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count": len(s.records),
		"parks": s.records,
	})
}

func (s *Server) handleRank(c *gin.Context) {
	label := c.DefaultQuery("by", parks.AverageLabel)

	top := s.cfg.TopN
	if raw := c.Query("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "top must be a non-negative integer"})
			return
		}
		top = n
	}

	r, err := s.ranking(label, top)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	f := output.NewJSONFormatter()
	f.Compact = true
	if err := f.Format(r, &buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", buf.Bytes())
}

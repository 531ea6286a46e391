// Package api provides the HTTP ingress: job submission and lifecycle
// endpoints, the WebSocket event stream, and health reporting.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/database"
	"github.com/narraforge/narraforge/pkg/events"
	"github.com/narraforge/narraforge/pkg/queue"
	"github.com/narraforge/narraforge/pkg/services"
)

// Server is the API server. All fields except the services are optional;
// nil workerPool and connManager degrade the affected endpoints instead of
// panicking, which keeps handler tests hermetic.
type Server struct {
	cfg            *config.Config
	dbClient       *database.Client
	jobService     *services.JobService
	eventService   *services.EventService
	warningService *services.SystemWarningsService
	workerPool     *queue.WorkerPool
	connManager    *events.ConnectionManager

	httpServer *http.Server
}

// NewServer creates the API server with its service dependencies.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	jobService *services.JobService,
	eventService *services.EventService,
	workerPool *queue.WorkerPool,
	connManager *events.ConnectionManager,
) *Server {
	return &Server{
		cfg:          cfg,
		dbClient:     dbClient,
		jobService:   jobService,
		eventService: eventService,
		workerPool:   workerPool,
		connManager:  connManager,
	}
}

// SetWarningsService attaches the system warnings service.
// Called during startup wiring.
func (s *Server) SetWarningsService(ws *services.SystemWarningsService) {
	s.warningService = ws
}

// Handler builds the route tree. Exposed separately from Start so tests can
// drive the full router through httptest without binding a port.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/jobs", s.submitJobHandler)
		v1.GET("/jobs", s.listJobsHandler)
		v1.GET("/jobs/:id", s.getJobHandler)
		v1.POST("/jobs/:id/cancel", s.cancelJobHandler)
		v1.POST("/jobs/:id/resume", s.resumeJobHandler)
		v1.GET("/jobs/:id/events", s.jobEventsHandler)

		v1.GET("/ws", s.wsHandler)

		v1.GET("/system/warnings", s.systemWarningsHandler)
	}

	return r
}

// Start begins serving HTTP on the given address. Blocks until the server
// stops; returns http.ErrServerClosed after a clean Shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

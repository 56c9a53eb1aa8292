package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quantfolio/portfolio-analytics/internal/websocket"
	"github.com/quantfolio/portfolio-analytics/pkg/metrics"
	"github.com/quantfolio/portfolio-analytics/pkg/utils/logger"
)

// Server is the HTTP API server
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	handlers   *Handlers
	hub        *websocket.Hub
	recorder   *metrics.Recorder
	log        *logger.Logger
}

// CreateServer creates a new API server
func CreateServer(handlers *Handlers, hub *websocket.Hub, recorder *metrics.Recorder, env string) *Server {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	s := &Server{
		router:   router,
		handlers: handlers,
		hub:      hub,
		recorder: recorder,
		log:      logger.GetLogger("api.server"),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Use(RecoveryMiddleware())
	s.router.Use(LoggingMiddleware())
	s.router.Use(MetricsMiddleware(s.recorder))
	s.router.Use(CORSMiddleware())

	s.router.GET("/health", s.handlers.HealthCheckHandler)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.GET("/ws", func(c *gin.Context) {
		s.hub.HandleWebSocket(c.Writer, c.Request)
	})

	v1 := s.router.Group("/api/v1")
	{
		portfolios := v1.Group("/portfolios")
		{
			portfolios.GET("", s.handlers.ListPortfoliosHandler)
			portfolios.POST("", s.handlers.GeneratePortfolioHandler)
			portfolios.GET("/:id", s.handlers.GetPortfolioHandler)
			portfolios.DELETE("/:id", s.handlers.DeletePortfolioHandler)
			portfolios.POST("/:id/activate", s.handlers.ActivatePortfolioHandler)
			portfolios.GET("/:id/analytics", s.handlers.GetAnalyticsHandler)
			portfolios.GET("/:id/transactions", s.handlers.GetTransactionsHandler)
			portfolios.GET("/:id/optimize/frontier", s.handlers.GetFrontierHandler)
			portfolios.POST("/:id/scenarios", s.handlers.AddScenarioHandler)
			portfolios.DELETE("/:id/scenarios/:sid", s.handlers.RemoveScenarioHandler)
			portfolios.GET("/:id/chart", s.handlers.GetChartHandler)
		}
	}
}

// Start begins listening for requests. It blocks until the server stops.
func (s *Server) Start(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.log.Infof("API server listening on %s", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.log.Info("Shutting down API server")
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the gin engine, primarily for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

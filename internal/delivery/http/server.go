package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/accessnav-service/internal/config"
	"github.com/accessnav-service/internal/delivery/http/handler"
	"github.com/accessnav-service/internal/delivery/http/middleware"
)

// Server is the Fiber HTTP server wiring middleware, routes and handlers.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	routeHandler      *handler.RouteHandler
	reportHandler     *handler.ReportHandler
	alertHandler      *handler.AlertHandler
	savedRouteHandler *handler.SavedRouteHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	routeHandler *handler.RouteHandler,
	reportHandler *handler.ReportHandler,
	alertHandler *handler.AlertHandler,
	savedRouteHandler *handler.SavedRouteHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "AccessNav Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		routeHandler:      routeHandler,
		reportHandler:     reportHandler,
		alertHandler:      alertHandler,
		savedRouteHandler: savedRouteHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(middleware.Identity())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Navigation
	api.Post("/navigation/route", s.routeHandler.PlanRoute)

	// Hazard reports and community validation
	api.Get("/reports", s.reportHandler.List)
	api.Post("/reports", s.reportHandler.Submit)
	api.Get("/reports/:id", s.reportHandler.Get)
	api.Post("/reports/:id/validate", s.reportHandler.Vote)

	// Area alerts
	api.Get("/alerts", s.alertHandler.List)
	api.Post("/alerts", s.alertHandler.Create)

	// Saved routes
	api.Post("/routes", s.savedRouteHandler.Save)
	api.Get("/routes", s.savedRouteHandler.List)
	api.Delete("/routes/:id", s.savedRouteHandler.Delete)
}

// Start runs the listener until shutdown.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}

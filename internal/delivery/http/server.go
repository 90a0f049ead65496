package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/transit-site/internal/config"
	"github.com/transit-site/internal/delivery/http/handler"
	"github.com/transit-site/internal/delivery/http/middleware"
	"github.com/transit-site/internal/pkg/errors"
	"github.com/transit-site/internal/pkg/utils"
	"github.com/transit-site/internal/usecase"
)

// Handlers groups everything the server mounts.
type Handlers struct {
	Status   *handler.StatusHandler
	Operator *handler.OperatorHandler
	Route    *handler.RouteHandler
	Catalog  *handler.CatalogHandler
	Admin    *handler.AdminHandler
	AdminUC  *usecase.AdminUseCase
}

// Server - Fiber HTTP server for the public and admin APIs
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Transit Site",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/home", s.handlers.Catalog.Home)
	api.Get("/status", s.handlers.Status.GetBoard)
	api.Get("/incident", s.handlers.Status.GetIncident)

	api.Get("/operators", s.handlers.Operator.List)
	api.Get("/operators/:slug", s.handlers.Operator.Get)

	api.Get("/routes", s.handlers.Route.List)
	api.Get("/routes/:uuid", s.handlers.Route.Get)

	api.Get("/fares", s.handlers.Catalog.Fares)
	api.Get("/maps", s.handlers.Catalog.Maps)
	api.Get("/maps/:slug", s.handlers.Catalog.MapRedirect)

	admin := s.app.Group("/admin/api", middleware.AdminAuth(s.config.Admin))
	s.handlers.Admin.Register(admin, s.handlers.AdminUC)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler renders errors that escaped a handler in the same
// envelope handlers use.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := errors.As(err); ok {
			return utils.SendError(c, appErr)
		}

		code := fiber.StatusInternalServerError
		appErr := errors.ErrInternalServer
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			appErr = errors.New(fiberErrorCode(code), e.Message, code)
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return utils.SendError(c, appErr)
	}
}

func fiberErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE"
	default:
		if status >= fiber.StatusInternalServerError {
			return "INTERNAL_SERVER_ERROR"
		}
		return "INVALID_REQUEST"
	}
}

package config

import (
	"ReceiptTracker/database/migrations"
	"ReceiptTracker/database/postgres"
	"ReceiptTracker/internal/api/admin"
	adminHandler "ReceiptTracker/internal/api/admin/handler"
	budgetHandler "ReceiptTracker/internal/api/budget/handler"
	budgetRepository "ReceiptTracker/internal/api/budget/repository"
	budgetService "ReceiptTracker/internal/api/budget/service"
	purchaseHandler "ReceiptTracker/internal/api/purchase/handler"
	purchaseRepository "ReceiptTracker/internal/api/purchase/repository"
	purchaseService "ReceiptTracker/internal/api/purchase/service"
	reportHandler "ReceiptTracker/internal/api/report/handler"
	reportRepository "ReceiptTracker/internal/api/report/repository"
	reportService "ReceiptTracker/internal/api/report/service"
	transactionHandler "ReceiptTracker/internal/api/transaction/handler"
	transactionRepository "ReceiptTracker/internal/api/transaction/repository"
	transactionService "ReceiptTracker/internal/api/transaction/service"
	userHandler "ReceiptTracker/internal/api/user/handler"
	userRepository "ReceiptTracker/internal/api/user/repository"
	userService "ReceiptTracker/internal/api/user/service"
	"ReceiptTracker/internal/middleware"
	"ReceiptTracker/pkg/redis"
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const healthCheckTimeout = 2 * time.Second

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	config      *AppConfig
	middleware  middleware.Middleware
	validator   *validator.Validate
	handlers    []handler
	redisServer redis.IRedis
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if server.middleware == nil {
		return nil, fmt.Errorf("middleware is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithConfig(cfg *AppConfig) ServerOption {
	return func(s *Server) error {
		if cfg == nil {
			return fmt.Errorf("config must not be nil")
		}
		s.config = cfg
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithDatabase connects to postgres and, when DB_AUTO_MIGRATE is set,
// applies pending migrations.
func WithDatabase() ServerOption {
	return func(s *Server) error {
		if s.config == nil {
			return fmt.Errorf("config must be initialized before database")
		}

		db, err := postgres.New(postgres.Options{
			DSN:          s.config.Database.DSN(),
			MaxOpenConns: s.config.Database.MaxOpenConns,
			MaxIdleConns: s.config.Database.MaxIdleConns,
		})
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		if s.config.Database.AutoMigrate {
			if err := migrations.Up(db.DB); err != nil {
				_ = db.Close()
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			if s.log != nil {
				s.log.Info("Database migrations applied")
			}
		}

		s.db = db
		return nil
	}
}

// WithDB injects an existing connection.
func WithDB(db *sqlx.DB) ServerOption {
	return func(s *Server) error {
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.config == nil {
			return fmt.Errorf("config must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, middleware.Options{
			APIKey:         s.config.App.APIKey,
			RateLimitRPS:   s.config.Limiter.RPS,
			RateLimitBurst: s.config.Limiter.Burst,
		})
		return nil
	}
}

func (s *Server) RegisterHandler() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	s.engine.Use(s.middleware.NewRateLimiter)

	s.setupHealthCheck()

	// User Domain
	userRepo := userRepository.New(s.db, s.log)
	userServices := userService.NewUserService(s.log, userRepo, s.redisServer)
	userHandlers := userHandler.New(s.log, s.validator, s.middleware, userServices)

	// Transaction Domain
	transactionRepo := transactionRepository.New(s.db, s.log)
	transactionServices := transactionService.NewTransactionService(s.log, transactionRepo, s.redisServer)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices)

	// Purchase Domain
	purchaseRepo := purchaseRepository.New(s.db, s.log)
	purchaseServices := purchaseService.NewPurchaseService(s.log, purchaseRepo, s.redisServer)
	purchaseHandlers := purchaseHandler.New(s.log, s.validator, s.middleware, purchaseServices)

	// Budget Domain
	budgetRepo := budgetRepository.New(s.db, s.log)
	budgetServices := budgetService.NewBudgetService(s.log, budgetRepo, s.redisServer)
	budgetHandlers := budgetHandler.New(s.log, s.validator, s.middleware, budgetServices)

	// Reports
	reportRepo := reportRepository.New(s.db, s.log)
	reportServices := reportService.NewReportService(s.log, reportRepo, s.redisServer, s.config.Report.CacheTTL)
	reportHandlers := reportHandler.New(s.log, s.middleware, reportServices)

	// Admin
	adminHandlers := adminHandler.New(s.log, s.middleware, admin.InfoResponse{
		ProjectName: s.config.App.Name,
		Version:     s.config.App.Version,
	})

	// Reports register first: their literal segments share prefixes with
	// the purchase and budget id routes.
	s.handlers = append(s.handlers,
		reportHandlers,
		userHandlers,
		transactionHandlers,
		purchaseHandlers,
		budgetHandlers,
		adminHandlers,
	)

	for _, h := range s.handlers {
		h.Start(s.engine)
	}
}

func (s *Server) Run() error {
	return s.engine.Listen(fmt.Sprintf(":%s", s.config.App.Port))
}

// Shutdown stops accepting requests and waits for in-flight ones before
// releasing the database pool and the cache client.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.engine.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}

	var dbErr error
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			dbErr = fmt.Errorf("failed to close database: %w", err)
		}
	}
	if s.redisServer != nil {
		if err := s.redisServer.Close(); err != nil && dbErr == nil {
			return fmt.Errorf("failed to close redis client: %w", err)
		}
	}
	return dbErr
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})

	s.engine.Get("/healthz", func(ctx *fiber.Ctx) error {
		if s.db == nil {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "database not configured",
			})
		}

		c, cancel := context.WithTimeout(ctx.UserContext(), healthCheckTimeout)
		defer cancel()

		if err := s.db.PingContext(c); err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Health check database ping failed")
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "database unavailable",
			})
		}

		return ctx.JSON(fiber.Map{
			"status": "ok",
		})
	})
}

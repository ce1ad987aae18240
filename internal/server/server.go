package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"github.com/thereayou/classroom-lite/internal/config"
	"github.com/thereayou/classroom-lite/internal/engine"
	"github.com/thereayou/classroom-lite/internal/handlers"
	"github.com/thereayou/classroom-lite/internal/middleware"
)

type Server struct {
	Router  *gin.Engine
	Manager *engine.Manager
	Redis   *redis.Client

	httpServer *http.Server
	logger     *logrus.Logger
}

func NewServer(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	eng, err := engine.NewSeeded()
	if err != nil {
		return nil, fmt.Errorf("seed engine: %w", err)
	}
	manager := engine.NewManager(eng)
	logger.WithField("rooms", eng.RoomCount()).Info("engine seeded with sample data")

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(cfg.AllowedOrigin))

	// Rate limiting needs Redis; without an address the service runs
	// standalone and unthrottled.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("redis connect: %w", err)
		}
		router.Use(middleware.RateLimit(rdb, logger, cfg.RateLimit.Max, cfg.RateLimit.Window))
		logger.WithField("addr", cfg.Redis.Addr).Info("rate limiting enabled")
	}

	roomH := handlers.NewRoomHandler(manager)
	allocationH := handlers.NewAllocationHandler(manager)
	scheduleH := handlers.NewScheduleHandler(manager)
	systemH := handlers.NewSystemHandler(manager, logger)
	APIEndpoints(router, roomH, allocationH, scheduleH, systemH)

	return &Server{
		Router:  router,
		Manager: manager,
		Redis:   rdb,
		httpServer: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: router,
		},
		logger: logger,
	}, nil
}

// Run serves HTTP until the listener closes. A graceful Shutdown makes Run
// return nil.
func (s *Server) Run() error {
	s.logger.WithField("addr", s.httpServer.Addr).Info("server starting")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and releases the redis connection.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	err := s.httpServer.Shutdown(ctx)
	if s.Redis != nil {
		if cerr := s.Redis.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

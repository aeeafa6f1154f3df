package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispatch/cmd"
	gateway "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/in/ws"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file, using environment as is")
	}

	configs, err := cmd.ParseConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.NewSugaredLogger(configs.DevMode)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	root := cmd.NewCompositionRoot(configs, logger)

	jobManager := jobs.NewJobManager(
		root.CreateGetOrderStatsQueryHandler(),
		configs.StatsSchedule,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		logger.Fatalw("failed to start jobs", "error", err)
	}
	defer jobManager.StopAll()

	e := buildWebServer(&root, configs, logger)

	go func() {
		if serveErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); serveErr != nil &&
			serveErr != http.ErrServerClosed {
			logger.Fatalw("web server failed", "error", serveErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infow("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(ctx); err != nil {
		logger.Errorw("shutdown incomplete", "error", err)
	}
}

func buildWebServer(root *cmd.CompositionRoot, configs cmd.Config, logger *zap.SugaredLogger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	// cross-origin access is unrestricted; the dashboard may be served from anywhere
	e.Use(middleware.CORS())

	server := gateway.NewServer(
		root.CreateRegisterUserCommandHandler(),
		root.CreatePlaceOrderCommandHandler(),
		root.CreateAcceptOrderCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateFinishOrderCommandHandler(),
		root.CreateUpdateRiderLocationCommandHandler(),
		root.CreateLoginUserQueryHandler(),
		root.CreateGetAllOrdersQueryHandler(),
		root.CreateGetOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	wsHandler := ws.NewHandler(root.EventBus(), logger)
	e.GET("/ws", wsHandler.Serve)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.Static("/", configs.StaticDir)

	return e
}

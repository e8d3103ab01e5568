package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booking-sync/core/loader"
	"booking-sync/core/logger"
	"booking-sync/core/middleware/auth"
	"booking-sync/core/middleware/rayid"
	"booking-sync/feature/integrity"
	"booking-sync/feature/schedule"
	"booking-sync/feature/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "booking-sync/docs/swagger"
)

// @title Booking Sync API
// @version 1.0
// @description Read-only view of the reconciled Cal.com registrations.
// @host localhost:8080
// @BasePath /

var offlineServe bool

// serveCmd starts the web view.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the registration table over HTTP",
	Long: `Starts the HTTP server exposing the last export as an HTML table and a JSON API.
When sync.refresh holds a cron expression, the pipeline also runs on that schedule.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&offlineServe, "offline", false, "Serve and refresh the debug_ outputs from provider fixtures")
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logg.Sync()

	json := jsoniter.ConfigCompatibleWithStandardLibrary
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})

	// RayID first so every later log line carries it
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

	out, err := openSinks(cfg)
	if err != nil {
		return err
	}

	view := schedule.NewFeature(cfg.Export, offlineServe, logg)
	mgr := loader.NewManager(logg)
	mgr.Register(view)
	mgr.Register(integrity.NewFeature(cfg.Export, offlineServe, out.store, cfg.Storage, out.db, logg))
	if _, err := mgr.LoadAll(app); err != nil {
		return err
	}

	var scheduler *sync.Scheduler
	if cfg.Sync.Refresh != "" {
		svc, err := newSyncService(cfg, logg, offlineServe, out)
		if err != nil {
			return err
		}
		scheduler, err = sync.NewScheduler(cfg.Sync.Refresh, func(ctx context.Context) error {
			if _, err := svc.Run(ctx, offlineServe); err != nil {
				return err
			}
			view.Service().Refresh()
			return nil
		}, logg)
		if err != nil {
			return err
		}
		scheduler.Start()
		logg.Info("Scheduled refresh enabled", zap.String("schedule", cfg.Sync.Refresh))
	}

	listenErr := make(chan error, 1)
	go func() {
		logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
		listenErr <- app.Listen(cfg.Server.Address())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		return err
	case <-quit:
	}

	logg.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if scheduler != nil {
		if err := scheduler.Stop(ctx); err != nil {
			logg.Warn("Scheduled run still in progress at shutdown", zap.Error(err))
		}
	}
	return app.ShutdownWithContext(ctx)
}

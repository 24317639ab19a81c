package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"application-sync/core/database"
	"application-sync/core/loader"
	"application-sync/core/logger"
	"application-sync/core/middleware/auth"
	"application-sync/core/middleware/requestid"
	"application-sync/core/storage"
	"application-sync/feature/archive"
	"application-sync/feature/history"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the run history API",
	Long:  `Starts the HTTP server exposing past sync runs and their archived files.`,
	RunE:  runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1. Load Configuration and Logger
	cfg, logg, err := setup()
	if err != nil {
		return err
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// 2. Connect to Database (Optional)
	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else if err := history.NewRepository(conn).Migrate(cmd.Context()); err != nil {
		logg.Warn("History tables unavailable", zap.Error(err))
	} else {
		db = conn
		logg.Info("Connected to history database", zap.String("driver", cfg.Database.Driver))
	}

	// 3. Initialize Storage (Optional)
	var store storage.Client
	if cfg.Storage.Enabled {
		if store, err = storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage client failed", zap.Error(err))
			store = nil
		}
	}

	// 4. Initialize Fiber App
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// 5. Feature Loader
	mgr := loader.NewManager(logg)
	mgr.Register(history.NewFeature(db, logg))
	mgr.Register(archive.NewFeature(store, cfg.Storage, logg))

	// Middleware Registration
	// 1. Request ID (Must be first to trace everything)
	app.Use(requestid.New())

	// 2. Logging Middleware (Zap + request id)
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRequestID(logg, c)
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

	// 3. Auth (everything but the health check)
	if !cfg.Server.IsProtected() {
		logg.Warn("SERVER_API_KEY is not set, the API is unprotected")
	}
	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/health"}}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// 6. Load Features
	if _, err := mgr.LoadAll(app); err != nil {
		return fmt.Errorf("failed to load features: %w", err)
	}

	// 7. Start Server
	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
		errCh <- app.Listen(cfg.Server.Address())
	}()

	// 8. Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-c:
	}
	logg.Info("Shutting down server...")
	return app.Shutdown()
}

package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/loader"
	"catalog-sync/core/logger"
	"catalog-sync/core/middleware/rayid"
	"catalog-sync/core/reconcile"
	"catalog-sync/core/upstream"

	"catalog-sync/feature/catalog"
	"catalog-sync/feature/catalog/models"
	catalogreconcile "catalog-sync/feature/catalog/reconcile"
	"catalog-sync/feature/health"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "catalog-sync/docs/swagger"
)

// @title Catalog Sync API
// @version 1.0
// @description Mirrors a remote read-only catalog into a relational store.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog sync server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Required)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// 4. Bootstrap Schema
		if err := catalogreconcile.Prepare(context.Background(), db); err != nil {
			logg.Fatal("Schema bootstrap failed", zap.Error(err))
		}

		// 5. Initialize Upstream Client and Archive
		client := upstream.NewClient(cfg.Upstream)
		archiver := newArchiver(context.Background(), cfg, logg)
		pages := reconcile.NewPageCache(time.Duration(cfg.Cache.PageTTLSeconds) * time.Second)

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()
		defaultLimit, maxLimit := cfg.Server.Limits()

		mgr.Register(health.NewFeature(db, models.ExpectedColumns(), logg))
		mgr.Register(catalog.NewFeature(catalogreconcile.NewAdapter(client, db), pages, archiver, logg, defaultLimit, maxLimit))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			l.Info("Request completed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("duration", time.Since(start)),
			)
			return err
		})

		// 3. Swagger Documentation
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("upstream", cfg.Upstream.BaseURL),
			)
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
		_ = client.Close()
		if err := database.Close(db); err != nil {
			logg.Warn("Failed to close database", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"

	"github.com/javajoker/shop-admin/internal/config"
	"github.com/javajoker/shop-admin/internal/database"
	"github.com/javajoker/shop-admin/internal/i18n"
	"github.com/javajoker/shop-admin/internal/repository"
	"github.com/javajoker/shop-admin/internal/router"
)

func main() {
	app := &cli.App{
		Name:    "shop-admin",
		Usage:   "product, category and seller administration API",
		Version: router.Version,
		Action:  serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the database schema",
				Action: migrate,
			},
			{
				Name:   "seed",
				Usage:  "create the default categories on an empty database",
				Action: seed,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("shop-admin failed")
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := configureLogging(cfg.Log); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configureLogging(cfg config.LogConfig) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logrus.SetLevel(level)

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// openDatabase connects and migrates. The returned closer is safe to defer.
func openDatabase(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	closer := func() { database.Close(db) }

	if err := database.RunMigrations(db); err != nil {
		closer()
		return nil, nil, err
	}
	return db, closer, nil
}

func openStores(cfg *config.Config) (repository.Stores, func(), error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logrus.Warn("Using the in-memory store; data is lost on exit")
		return repository.NewMemoryStore().Stores(), func() {}, nil
	}

	db, closer, err := openDatabase(cfg)
	if err != nil {
		return repository.Stores{}, nil, err
	}
	return repository.NewPostgresStores(db), closer, nil
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	stores, closeStores, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer closeStores()

	if cfg.Seed {
		if err := database.SeedInitialData(c.Context, stores.Categories); err != nil {
			return err
		}
	}

	// Initialize i18n
	if err := i18n.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize i18n: %w", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	routerCtx, stopRouter := context.WithCancel(c.Context)
	defer stopRouter()

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router.Initialize(routerCtx, stores, cfg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"port":  cfg.Server.Port,
			"store": cfg.Store.Driver,
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}
	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logrus.Info("Server exited")
	return nil
}

func migrate(c *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	_, closeDB, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer closeDB()
	return nil
}

func seed(c *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, closeDB, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	return database.SeedInitialData(c.Context, repository.NewPostgresCategoryRepository(db))
}

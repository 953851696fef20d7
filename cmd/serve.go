package cmd

import (
	"fmt"

	"icon-curator/core/database"
	"icon-curator/core/filesystem"
	"icon-curator/core/loader"
	"icon-curator/core/logger"
	"icon-curator/core/middleware/auth"
	"icon-curator/core/middleware/rayid"
	"icon-curator/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "icon-curator/docs/swagger"
)

// @title Icon Curator API
// @version 1.0
// @description Read-only access to a curated Fluent UI icon tree.
// @host localhost:8080
// @BasePath /

// serveCmd serves the curated tree over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the curated catalog over HTTP",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		if !cfg.Server.IsValidPort() {
			return fmt.Errorf("invalid server port %q", cfg.Server.Port)
		}

		// The recorded catalog is optional; without it entries come from the tree.
		var db *gorm.DB
		if cfg.Catalog.Record {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to catalog database")
			}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(catalog.NewFeature(filesystem.NewOS(), cfg.Curation.Output, db, cfg.Catalog, logg))

		// RayID first so every log line carries it.
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

		// Swagger stays public.
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("root", cfg.Curation.Output))
			errCh <- app.Listen(cfg.Server.Address())
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-cmd.Context().Done():
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	flags := serveCmd.Flags()
	flags.StringP("output", "o", "", "curated output tree to serve")
	flags.StringP("port", "p", "", "listen port")
	bindFlag(flags, "output", "curation.output")
	bindFlag(flags, "port", "server.port")
	RootCmd.AddCommand(serveCmd)
}

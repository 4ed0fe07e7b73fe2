package main

import (
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/veya/veya-api/internal/cache"
	"github.com/veya/veya-api/internal/catalog"
	"github.com/veya/veya-api/internal/config"
	"github.com/veya/veya-api/internal/db"
	"github.com/veya/veya-api/internal/web"
)

func main() {
	root := &cobra.Command{
		Use:   "veya-api",
		Short: "Personalization and onboarding API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	var overwrite bool
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the default personalization catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := db.Init(cfg.DBPath); err != nil {
				return err
			}
			return catalog.Seed(overwrite)
		},
	}
	seedCmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite existing categories with defaults")

	root.AddCommand(serveCmd, seedCmd)
	if err := root.Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func serve() error {
	cfg := config.Load()
	if err := db.Init(cfg.DBPath); err != nil {
		return err
	}
	cache.Init(cfg.RedisURL)

	// Idempotent bootstrap: existing categories are never touched.
	if err := catalog.Seed(false); err != nil {
		return err
	}

	r := web.Router(cfg)
	logrus.WithField("addr", cfg.Addr).Info("veya api listening")
	return http.ListenAndServe(cfg.Addr, r)
}

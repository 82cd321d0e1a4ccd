// Command pigpen serves the pig configurator and checks part catalogs.
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

	"pigpen/internal/config"
	"pigpen/internal/logger"
	"pigpen/internal/pig"
	"pigpen/internal/web"

	"github.com/spf13/cobra"
)

const (
	appName         = "pigpen"
	Version         = "0.1.0"
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Pig part configurator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(serveCmd(), catalogCmd(), versionCmd())
	return cmd
}

func serveCmd() *cobra.Command {
	var addr, catalogPath, logLevel string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("catalog") {
				cfg.CatalogPath = catalogPath
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (overrides PIGPEN_ADDR)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "data/pig-parts.yaml", "part catalog YAML (overrides PIGPEN_CATALOG_PATH)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error (overrides PIGPEN_LOG_LEVEL)")
	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	log, err := logger.Init(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}

	catalog, err := pig.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	log.Info().Str("path", cfg.CatalogPath).Int("parts", catalog.Len()).Msg("catalog loaded")

	srv := web.NewServer(catalog, log)
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("env", cfg.Env).Msg("listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect part catalogs",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate [path]",
		Short: "Load a catalog and report parts per category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "data/pig-parts.yaml"
			if len(args) == 1 {
				path = args[0]
			} else if cfg, err := config.Load(); err == nil {
				path = cfg.CatalogPath
			}
			catalog, err := pig.LoadCatalog(path)
			if err != nil {
				return err
			}
			return printCatalogSummary(cmd, path, catalog)
		},
	})
	return cmd
}

func printCatalogSummary(cmd *cobra.Command, path string, catalog *pig.Catalog) error {
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%s: %d parts\n", path, catalog.Len()); err != nil {
		return err
	}
	for _, cat := range pig.Categories {
		parts := catalog.PartsByCategory(cat)
		locked := 0
		for _, p := range parts {
			if !p.Unlocked {
				locked++
			}
		}
		if _, err := fmt.Fprintf(out, "  %-12s %2d (%d locked)\n", cat, len(parts), locked); err != nil {
			return err
		}
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	}
}

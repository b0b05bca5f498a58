// Package main is the site dashboard entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sitetwin/internal/config"
	"sitetwin/internal/logger"
	"sitetwin/internal/server"
	"sitetwin/internal/util"
)

var (
	configPath string
	port       int
	devMode    bool
	dataDir    string
	visualsDir string
	noBrowser  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sitetwin",
		Short: "Site digital twin dashboard",
		Long: `sitetwin serves the construction site dashboard: progress surveys, earned value
analysis, milestones, financials, precast element status and the site model embeds.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: ./config.toml, else beside the executable)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "dataDir", "", "data directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&visualsDir, "visualsDir", "", "visuals directory (overrides config)")
	rootCmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (used only when config.toml sets none)")
	rootCmd.Flags().BoolVar(&devMode, "dev", false, "development mode")
	rootCmd.Flags().BoolVar(&noBrowser, "no-browser", false, "do not open a browser")

	rootCmd.AddCommand(newCheckCmd(), newInspectCmd(), newInitCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig config file plus command line overrides
func loadConfig() (*config.AppConfig, config.LoadConfigInfo, error) {
	cfg, info, err := config.LoadConfigWithInfo(configPath)
	if err != nil {
		return nil, info, fmt.Errorf("load config %s: %w", info.Path, err)
	}
	if port > 0 && !info.PortSpecified {
		cfg.Server.Port = port
	}
	if devMode {
		cfg.Server.DevMode = true
	}
	if dataDir != "" {
		cfg.Data.DataDir = dataDir
	}
	if visualsDir != "" {
		cfg.Data.VisualsDir = visualsDir
	}
	if noBrowser {
		cfg.Server.OpenBrowser = false
	}
	return cfg, info, nil
}

func serve(cmd *cobra.Command, args []string) error {
	fmt.Println("==========================================")
	fmt.Println("  Site Digital Twin Dashboard")
	fmt.Println("==========================================")

	cfg, info, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.Server.DevMode)
	defer log.Sync()

	log.Info("config loaded",
		zap.String("path", info.Path),
		zap.String("dataDir", cfg.Data.DataDir),
		zap.String("visualsDir", cfg.Data.VisualsDir),
	)

	srv, err := server.NewServer(cfg, log)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	ln, err := srv.Listen(addr)
	if err != nil {
		_ = srv.Shutdown(context.Background())
		return err
	}
	fmt.Printf("Listening on port %d ...\n", cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	if cfg.Server.OpenBrowser && !cfg.Server.DevMode {
		fmt.Printf("Opening browser: %s\n", url)
		if err := util.OpenBrowser(url); err != nil {
			fmt.Printf("Could not open a browser, visit %s manually\n", url)
		}
	} else {
		fmt.Printf("Visit %s\n", url)
	}

	fmt.Println("\nPress Ctrl+C to stop...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var serveErr error
	select {
	case serveErr = <-errCh:
	case <-quit:
		fmt.Println("\nShutting down...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
	if serveErr != nil {
		return fmt.Errorf("server stopped: %w", serveErr)
	}
	return nil
}

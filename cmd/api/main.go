package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "marmoraria_tech/docs"
	"marmoraria_tech/internal/infrastructure/config"
	"marmoraria_tech/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title           Marmoraria Tech API
// @version         1.0
// @description     Customers, materials and priced quotes for a stone workshop.

// @contact.name   Marmoraria Tech
// @contact.email  contato@marmorariatech.com

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token from /auth/login.

var (
	configPath    string
	verbose       bool
	storageDriver string
	port          int

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "marmoraria",
	Short:         "Marmoraria Tech quote service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if storageDriver != "" {
			cfg.Storage.Driver = storageDriver
		}
		if port > 0 {
			cfg.HTTP.Port = port
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (default: $CONFIG_FILE or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&storageDriver, "storage", "", "storage driver: memory, dynamodb, redis, sqlite, postgres")
	rootCmd.PersistentFlags().IntVarP(&port, "port", "p", 0, "HTTP port")

	rootCmd.AddCommand(serveCmd, printCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

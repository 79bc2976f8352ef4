package main

import (
	"fmt"
	"log"
	"os"

	"github.com/NeuralTrust/InstallGate/pkg/config"
	infraLogger "github.com/NeuralTrust/InstallGate/pkg/infra/logger"
	"github.com/NeuralTrust/InstallGate/pkg/version"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	_ "github.com/NeuralTrust/InstallGate/pkg/infra/migrations"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "installer",
	Short:         "InstallGate serves the plugin install endpoints of the shop",
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config", "directory holding config.yaml")
}

func main() {
	rootCmd.AddCommand(serveCmd(), transactionCmd(), pluginCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads .env, the YAML config and builds the logger.
func bootstrap() (*config.Config, *logrus.Logger, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	if err := config.Load(configPath); err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := config.GetConfig()
	return cfg, infraLogger.NewLogger(cfg.Log), nil
}

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/InstallGate/pkg/common"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Install  InstallConfig  `mapstructure:"install"`
	Security SecurityConfig `mapstructure:"security"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	AdminRoute  string `mapstructure:"admin_route"`
	SwaggerURL  string `mapstructure:"swagger_url"`
}

type InstallConfig struct {
	ProjectDir      string        `mapstructure:"project_dir"`
	TransactionFile string        `mapstructure:"transaction_file"`
	TransactionTTL  time.Duration `mapstructure:"transaction_ttl"`
	MaintenanceFile string        `mapstructure:"maintenance_file"`
}

type SecurityConfig struct {
	CSRFEnabled bool   `mapstructure:"csrf_enabled"`
	CSRFHeader  string `mapstructure:"csrf_header"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

var globalConfig Config

func Load(configPath string) error {
	globalConfig = Config{}
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("could not load main config file: %w", err)
	}
	setDefaultValues(&globalConfig)
	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	v := viper.New()
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file %s.yaml not found: %w", fileName, err)
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(out, decodeHook); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func setDefaultValues(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.MetricsPort == 0 {
		cfg.Server.MetricsPort = 9090
	}
	if cfg.Server.AdminRoute == "" {
		cfg.Server.AdminRoute = common.DefaultAdminRoute
	}
	if cfg.Server.SwaggerURL == "" {
		cfg.Server.SwaggerURL = "/swagger.json"
	}
	if cfg.Install.ProjectDir == "" {
		cfg.Install.ProjectDir = "."
	}
	if cfg.Install.TransactionFile == "" {
		cfg.Install.TransactionFile = common.TransactionCheckFile
	}
	if cfg.Install.TransactionTTL <= 0 {
		cfg.Install.TransactionTTL = common.DefaultTransactionTTL
	}
	if cfg.Install.MaintenanceFile == "" {
		cfg.Install.MaintenanceFile = common.MaintenanceFile
	}
	if cfg.Security.CSRFHeader == "" {
		cfg.Security.CSRFHeader = common.CSRFHeader
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

func GetConfig() *Config {
	return &globalConfig
}

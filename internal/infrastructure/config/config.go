package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Store  StoreConfig  `mapstructure:"store"`
	Stock  StockConfig  `mapstructure:"stock"`
	Logger LoggerConfig `mapstructure:"logger"`
}

// AppConfig holds application identity configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// StoreConfig holds persistence configuration
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// StockConfig holds stock-policy configuration
type StockConfig struct {
	LowStockThreshold int `mapstructure:"low_stock_threshold"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from the environment, with defaults that make the
// binary runnable with no environment at all
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors)
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Stock.LowStockThreshold < 0 {
		return nil, fmt.Errorf("invalid configuration: stock.low_stock_threshold must not be negative")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "stockroom")
	v.SetDefault("app.environment", "dev")

	v.SetDefault("store.path", "inventory.json")

	v.SetDefault("stock.low_stock_threshold", 5)

	v.SetDefault("logger.level", "info")
}

func bindEnvVars(v *viper.Viper) {
	keys := []string{
		"app.name",
		"app.environment",
		"store.path",
		"stock.low_stock_threshold",
		"logger.level",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

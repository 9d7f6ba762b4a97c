package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort    string        `mapstructure:"SERVER_PORT"`
	GrpcPort      string        `mapstructure:"GRPC_PORT"`
	RedisUrl      string        `mapstructure:"REDIS_URL"`
	MongoUri      string        `mapstructure:"MONGO_URI"`
	MongoDatabase string        `mapstructure:"MONGO_DATABASE"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`
	PatternsFile  string        `mapstructure:"PATTERNS_FILE"`
	IsLocalCors   bool          `mapstructure:"LOCAL_CORS"`
	LogLevel      string        `mapstructure:"LOG_LEVEL"`
	WorkerLimit   int           `mapstructure:"WORKER_LIMIT"`
	MemoryLimit   int           `mapstructure:"MEMORY_LIMIT"`
}

var defaults = map[string]any{
	"SERVER_PORT":    ":8080",
	"GRPC_PORT":      ":8082",
	"REDIS_URL":      "",
	"MONGO_URI":      "",
	"MONGO_DATABASE": "shogi_insight",
	"CACHE_TTL":      10 * time.Minute,
	"PATTERNS_FILE":  "",
	"LOCAL_CORS":     false,
	"LOG_LEVEL":      "info",
	"WORKER_LIMIT":   0,
	"MEMORY_LIMIT":   10000,
}

// Setup reads cfgPath (a .env file) and the environment, environment
// winning. A missing file leaves the defaults and environment in effect.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.MemoryLimit < 0 {
		return nil, fmt.Errorf("MEMORY_LIMIT must not be negative, got %d", cfg.MemoryLimit)
	}
	if cfg.CacheTTL < 0 {
		return nil, fmt.Errorf("CACHE_TTL must not be negative, got %s", cfg.CacheTTL)
	}
	return &cfg, nil
}

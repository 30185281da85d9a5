package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Issuance IssuanceConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=social_exchange"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type IssuanceConfig struct {
	// Enabled controls whether this instance runs the periodic income
	// sweep. The Redis claim still guards against double issuance when
	// several instances enable it.
	Enabled  bool          `env:"ISSUANCE_ENABLED,   default=true"`
	Schedule string        `env:"ISSUANCE_SCHEDULE,  default=@weekly"`
	ClaimTTL time.Duration `env:"ISSUANCE_CLAIM_TTL, default=336h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(logger *slog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		logger.Error("Failed to load configuration", "error", err)
		panic(err)
	}
	return &cfg
}

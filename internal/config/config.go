package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// Values resolve in layers: struct defaults, then the yaml config file, then
// environment variable overrides. The result is an immutable value passed to
// constructors at startup.
type Config struct {
	// Redis contains all connection pool related configurations for the domain store
	Redis struct {
		// Host is the Redis server hostname or IP address
		Host string `env:"REDIS_HOST" env-default:"localhost" yaml:"host"`
		// Port is the Redis server port number
		Port int `env:"REDIS_PORT" env-default:"6379" yaml:"port"`
		// DB is the logical Redis database to select
		DB int `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// MaxConnections limits the size of the connection pool
		MaxConnections int `env:"REDIS_MAX_CONNECTIONS" env-default:"10" yaml:"maxConnections"`
		// PoolTimeout is the maximum time to wait for a connection when the pool is exhausted
		PoolTimeout time.Duration `env:"REDIS_POOL_TIMEOUT" env-default:"4s" yaml:"poolTimeout"`
		// DialTimeout is the maximum time to wait when establishing a new connection
		DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" env-default:"5s" yaml:"dialTimeout"`
		// ReadTimeout is the per-command read deadline
		ReadTimeout time.Duration `env:"REDIS_READ_TIMEOUT" env-default:"3s" yaml:"readTimeout"`
		// WriteTimeout is the per-command write deadline
		WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" env-default:"3s" yaml:"writeTimeout"`
	} `yaml:"redis"`

	// Logging contains log output related configurations
	Logging struct {
		// Level is the minimum log level (debug, info, warn, error)
		Level string `env:"LOG_LEVEL" env-default:"info" yaml:"level"`
		// Format selects the log encoder ("console" or "json")
		Format string `env:"LOG_FORMAT" env-default:"console" yaml:"format"`
	} `yaml:"logging"`
}

// Load receives the path for a yaml config file and returns a filled Config
// struct. A missing config file is not an error: defaults and environment
// overrides still apply, matching the optional -c flag of the CLI.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); err != nil {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

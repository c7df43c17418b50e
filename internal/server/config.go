package server

import (
	"context"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/planarkit/planarkit/pkg/cache"
	"github.com/planarkit/planarkit/pkg/errors"
)

// Config is the server configuration, loaded from a TOML file.
type Config struct {
	// Listen is the address the HTTP server binds to.
	Listen string `toml:"listen"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis", "mongo" or "null".
	Backend string `toml:"backend"`

	// Dir is the cache directory for the file backend.
	Dir string `toml:"dir"`

	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

// RedisConfig configures the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig configures the mongo cache backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// DefaultConfig returns the configuration used when no file is given:
// listen on :8080 with caching disabled.
func DefaultConfig() Config {
	return Config{
		Listen: ":8080",
		Cache:  CacheConfig{Backend: "null"},
	}
}

// LoadConfig reads a TOML configuration file, filling unset fields from
// [DefaultConfig].
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	return cfg, nil
}

// OpenCache constructs the configured cache backend, instrumented with the
// registered cache hooks.
func (c CacheConfig) OpenCache(ctx context.Context) (cache.Cache, error) {
	var (
		inner cache.Cache
		err   error
	)
	switch c.Backend {
	case "", "null":
		inner = cache.NewNullCache()
	case "file":
		dir := c.Dir
		if dir == "" {
			dir, err = os.UserCacheDir()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "resolve cache dir")
			}
			dir += "/planarkit"
		}
		inner, err = cache.NewFileCache(dir)
	case "redis":
		inner, err = cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		})
	case "mongo":
		inner, err = cache.NewMongoCache(ctx, c.Mongo.URI, c.Mongo.Database, c.Mongo.Collection)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"unknown cache backend %q, want file, redis, mongo or null", c.Backend)
	}
	if err != nil {
		return nil, err
	}
	return cache.WithHooks(inner, c.Backend), nil
}

package utils

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	PokeAPI PokeAPIConfig `yaml:"pokeapi"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type PokeAPIConfig struct {
	BaseURL         string        `yaml:"base_url"`
	Timeout         time.Duration `yaml:"timeout"`
	MaxConcurrency  int           `yaml:"max_concurrency"`   // parallel detail requests per batch
	SearchIndexSize int           `yaml:"search_index_size"` // names pulled for substring search
}

type SessionConfig struct {
	Backend       string        `yaml:"backend"` // "memory", "sqlite" or "redis"
	TTL           time.Duration `yaml:"ttl"`
	SQLitePath    string        `yaml:"sqlite_path"` // empty means ~/.dexhub/sessions.db
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		PokeAPI: PokeAPIConfig{
			BaseURL:         "https://pokeapi.co/api/v2",
			Timeout:         10 * time.Second,
			MaxConcurrency:  16,
			SearchIndexSize: 1500,
		},
		Session: SessionConfig{
			Backend:   "memory",
			TTL:       24 * time.Hour,
			RedisAddr: "127.0.0.1:6379",
		},
		Log: LogConfig{Level: "info"},
	}
}

// LoadConfig layers defaults, the optional YAML file at path and DEXHUB_*
// environment variables, in that order. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DEXHUB_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("DEXHUB_POKEAPI_URL"); v != "" {
		cfg.PokeAPI.BaseURL = v
	}
	if v := os.Getenv("DEXHUB_POKEAPI_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.PokeAPI.Timeout = d
		}
	}
	if v := os.Getenv("DEXHUB_MAX_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PokeAPI.MaxConcurrency = n
		}
	}
	if v := os.Getenv("DEXHUB_SEARCH_INDEX_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PokeAPI.SearchIndexSize = n
		}
	}
	if v := os.Getenv("DEXHUB_SESSION_BACKEND"); v != "" {
		cfg.Session.Backend = v
	}
	if v := os.Getenv("DEXHUB_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Session.TTL = d
		}
	}
	if v := os.Getenv("DEXHUB_DB_PATH"); v != "" {
		cfg.Session.SQLitePath = v
	}
	if v := os.Getenv("DEXHUB_REDIS_ADDR"); v != "" {
		cfg.Session.RedisAddr = v
	}
	if v := os.Getenv("DEXHUB_REDIS_PASSWORD"); v != "" {
		cfg.Session.RedisPassword = v
	}
	if v := os.Getenv("DEXHUB_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Session.RedisDB = n
		}
	}
	if v := os.Getenv("DEXHUB_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
	Game     Game     `yaml:"game"`
	Logging  Logging  `yaml:"logging"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

type Database struct {
	DSN           string `yaml:"dsn"`
	MigrationsDir string `yaml:"migrations_dir"`
}

// Game holds tuning for a playthrough. An empty ScenarioPath means the
// embedded scenario; Seed 0 means a clock-derived seed.
type Game struct {
	ScenarioPath      string `yaml:"scenario_path"`
	ScriptedCitizenID string `yaml:"scripted_citizen_id"`
	Seed              uint64 `yaml:"seed"`
}

type Logging struct {
	Level string `yaml:"level"`
}

func Default() Config {
	return Config{
		Server:   Server{Addr: ":8080"},
		Database: Database{MigrationsDir: "db/migrations"},
		Logging:  Logging{Level: "info"},
	}
}

// Load reads path when it is set, then applies WATCHFLOOR_* overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if cfg, err = parse(data); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parse parses YAML bytes into a Config, applying defaults.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str("WATCHFLOOR_ADDR", &cfg.Server.Addr)
	str("WATCHFLOOR_DB_DSN", &cfg.Database.DSN)
	str("WATCHFLOOR_MIGRATIONS_DIR", &cfg.Database.MigrationsDir)
	str("WATCHFLOOR_SCENARIO", &cfg.Game.ScenarioPath)
	str("WATCHFLOOR_SCRIPTED_CITIZEN", &cfg.Game.ScriptedCitizenID)
	str("WATCHFLOOR_LOG_LEVEL", &cfg.Logging.Level)

	if v, ok := lookup("WATCHFLOOR_SEED"); ok && strings.TrimSpace(v) != "" {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("WATCHFLOOR_SEED: %w", err)
		}
		cfg.Game.Seed = seed
	}
	return nil
}

// SlogLevel maps the configured level name; unknown names fall back to info.
func (l Logging) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

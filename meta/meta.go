package meta

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"colduel/game"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const envPrefix = "COLDUEL_"

// Defaults used when neither the environment nor a flag sets a value.
const (
	DefaultGames     = 10
	DefaultOutputDir = "results"
	DefaultDBPath    = "results/colduel.db"
	DefaultJudgeAddr = "128.250.106.25:5002"
	DefaultSyndicate = 12
	DefaultName      = "colduel"
	DefaultTimeout   = 30 * time.Second
)

type Config struct {
	Games     int    // Games per condition pair and seating
	Seed      uint64 // Seeds column draws and random agents
	Turns     int
	OutputDir string
	DBPath    string
	JudgeAddr string
	Timeout   time.Duration // Per judge request
	Syndicate int
	Name      string
	LogLevel  zerolog.Level
}

func Default() Config {
	return Config{
		Games:     DefaultGames,
		Seed:      1,
		Turns:     game.NumTurns,
		OutputDir: DefaultOutputDir,
		DBPath:    DefaultDBPath,
		JudgeAddr: DefaultJudgeAddr,
		Timeout:   DefaultTimeout,
		Syndicate: DefaultSyndicate,
		Name:      DefaultName,
		LogLevel:  zerolog.InfoLevel,
	}
}

// Load reads a .env file if present, then COLDUEL_* variables over the defaults.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := Default()
	var err error
	if cfg.Games, err = intEnv("GAMES", cfg.Games); err != nil {
		return Config{}, err
	}
	if cfg.Turns, err = intEnv("TURNS", cfg.Turns); err != nil {
		return Config{}, err
	}
	if cfg.Syndicate, err = intEnv("SYNDICATE", cfg.Syndicate); err != nil {
		return Config{}, err
	}
	if v := env("SEED"); v != "" {
		if cfg.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("invalid %sSEED: %w", envPrefix, err)
		}
	}
	if v := env("TIMEOUT"); v != "" {
		if cfg.Timeout, err = time.ParseDuration(v); err != nil {
			return Config{}, fmt.Errorf("invalid %sTIMEOUT: %w", envPrefix, err)
		}
	}
	if v := env("LOG_LEVEL"); v != "" {
		if cfg.LogLevel, err = zerolog.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("invalid %sLOG_LEVEL: %w", envPrefix, err)
		}
	}
	if v := env("OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := env("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := env("JUDGE_ADDR"); v != "" {
		cfg.JudgeAddr = v
	}
	if v := env("NAME"); v != "" {
		cfg.Name = v
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Turns < 1 {
		return fmt.Errorf("turns must be positive, got %d", c.Turns)
	}
	return nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(envPrefix + key))
}

func intEnv(key string, fallback int) (int, error) {
	v := env(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
	}
	return n, nil
}

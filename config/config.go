// Package config loads settings for the reindeer command from optional .env
// files and REINDEER_* environment variables.
//
// Precedence, highest first:
//
//  1. variables already present in the process environment;
//  2. values from the .env files, earlier files winning;
//  3. the defaults below.
//
// Command-line flags are applied on top by the command itself.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variable names.
const (
	EnvInput    = "REINDEER_INPUT"
	EnvWorkers  = "REINDEER_WORKERS"
	EnvLogLevel = "REINDEER_LOG_LEVEL"
	EnvRender   = "REINDEER_RENDER"
	EnvVerify   = "REINDEER_VERIFY"
)

// Defaults.
const (
	DefaultInput    = "-" // stdin
	DefaultWorkers  = 1
	DefaultLogLevel = logrus.InfoLevel
	defaultEnvFile  = ".env"
)

// ErrInvalidValue reports an environment variable that cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the command's settings.
type Config struct {
	InputPath string       // maze file, "-" for stdin
	Workers   int          // stepping goroutines per round, >= 1
	LogLevel  logrus.Level // minimum level written to stderr
	Render    bool         // print the maze with optimal cells marked
	Verify    bool         // cross-check the answer with Dijkstra
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		InputPath: DefaultInput,
		Workers:   DefaultWorkers,
		LogLevel:  DefaultLogLevel,
	}
}

// Load reads the given .env files (or ./.env when none are given) and then
// the environment. A missing default .env is not an error; a missing file
// that was named explicitly is.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", defaultEnvFile, err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("config: load %v: %w", files, err)
	}

	return FromEnv()
}

// FromEnv builds a Config from the process environment alone.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	cfg.InputPath = getEnvWithDefault(EnvInput, cfg.InputPath)
	if cfg.Workers, err = getEnvAsInt(EnvWorkers, cfg.Workers); err != nil {
		return Config{}, err
	}
	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("%w: %s=%d must be at least 1", ErrInvalidValue, EnvWorkers, cfg.Workers)
	}
	if cfg.LogLevel, err = getEnvAsLevel(EnvLogLevel, cfg.LogLevel); err != nil {
		return Config{}, err
	}
	if cfg.Render, err = getEnvAsBool(EnvRender, cfg.Render); err != nil {
		return Config{}, err
	}
	if cfg.Verify, err = getEnvAsBool(EnvVerify, cfg.Verify); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidValue, key, raw)
	}
	return v, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidValue, key, raw)
	}
	return v, nil
}

func getEnvAsLevel(key string, defaultValue logrus.Level) (logrus.Level, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	lvl, err := logrus.ParseLevel(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, raw, err)
	}
	return lvl, nil
}

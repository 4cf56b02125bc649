package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	configPathEnv     = "CONFIG_PATH"
	defaultConfigPath = "./config.yaml"
	envFileEnv        = "ENV_FILE"
	defaultEnvFile    = ".env"
)

// Load builds the Config. Values resolve as process environment, then the
// dotenv file (ENV_FILE or ./.env), then the YAML file (CONFIG_PATH or
// ./config.yaml), then env-default tags. A default-path file that does not
// exist is skipped; an explicitly named one is an error.
func Load() (*Config, error) {
	envFile, explicit := pathFromEnv(envFileEnv, defaultEnvFile)
	if err := godotenv.Load(envFile); err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
		return nil, fmt.Errorf("config: env file %s: %w", envFile, err)
	}

	var cfg Config
	if err := readInto(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func readInto(cfg *Config) error {
	path, explicit := pathFromEnv(configPathEnv, defaultConfigPath)

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}

// pathFromEnv returns the path named by env, or fallback when it is unset.
func pathFromEnv(env, fallback string) (path string, explicit bool) {
	if p := os.Getenv(env); p != "" {
		return p, true
	}
	return fallback, false
}

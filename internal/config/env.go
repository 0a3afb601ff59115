package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by the CLI.
const (
	EnvDB         = "TETRIS_DB"
	EnvSSHAddr    = "TETRIS_SSH_ADDR"
	EnvSeed       = "TETRIS_SEED"
	EnvConfig     = "TETRIS_CONFIG"
	EnvDifficulty = "TETRIS_DIFFICULTY"
)

// Env holds the settings that can come from the environment or a .env file.
// Empty fields were not set.
type Env struct {
	DB         string
	SSHAddr    string
	Seed       int64
	HasSeed    bool
	ConfigPath string
	Difficulty string
}

// LoadEnv reads .env files into the process environment without overriding
// variables that are already set. Missing files are ignored; with no
// arguments ./.env is used.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ReadEnv collects the TETRIS_* variables.
func ReadEnv() (Env, error) {
	env := Env{
		DB:         os.Getenv(EnvDB),
		SSHAddr:    os.Getenv(EnvSSHAddr),
		ConfigPath: os.Getenv(EnvConfig),
		Difficulty: os.Getenv(EnvDifficulty),
	}
	if raw := os.Getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return env, fmt.Errorf("config: %s=%q: %w", EnvSeed, raw, err)
		}
		env.Seed = seed
		env.HasSeed = true
	}
	return env, nil
}

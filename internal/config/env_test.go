package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvMissingFileIsIgnored(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("LoadEnv(missing) error = %v", err)
	}
}

func TestLoadEnvDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := []byte("TETRIS_DB=/tmp/from-file.db\nTETRIS_SSH_ADDR=:2222\nTETRIS_SEED=42\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvDB, "/tmp/from-env.db")
	// Registered with t.Setenv so the variables are restored afterwards.
	t.Setenv(EnvSSHAddr, "")
	t.Setenv(EnvSeed, "")
	os.Unsetenv(EnvSSHAddr)
	os.Unsetenv(EnvSeed)

	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	env, err := ReadEnv()
	if err != nil {
		t.Fatalf("ReadEnv() error = %v", err)
	}
	if env.DB != "/tmp/from-env.db" {
		t.Errorf("DB = %q, expected the existing variable to win", env.DB)
	}
	if env.SSHAddr != ":2222" {
		t.Errorf("SSHAddr = %q, expected :2222", env.SSHAddr)
	}
	if !env.HasSeed || env.Seed != 42 {
		t.Errorf("Seed = %d (set %v), expected 42", env.Seed, env.HasSeed)
	}
}

func TestReadEnvBadSeed(t *testing.T) {
	t.Setenv(EnvSeed, "forty-two")
	if _, err := ReadEnv(); err == nil {
		t.Error("ReadEnv() expected error for non-numeric seed")
	}
}

package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvCSV     = "PARKHEAT_CSV"
	EnvOutDir  = "PARKHEAT_OUTDIR"
	EnvMissing = "PARKHEAT_MISSING"
	EnvAddr    = "PARKHEAT_ADDR"
)

// LoadDotEnv loads dir/.env into the process environment. Variables that
// are already set are left alone, and a missing file is not an error.
func LoadDotEnv(dir string) error {
	err := godotenv.Load(filepath.Join(dir, ".env"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// FromEnv builds a Config from PARKHEAT_* variables using getenv
// (typically os.Getenv).
func FromEnv(getenv func(string) string) *Config {
	return &Config{
		CSV:     getenv(EnvCSV),
		OutDir:  getenv(EnvOutDir),
		Missing: getenv(EnvMissing),
		Addr:    getenv(EnvAddr),
	}
}

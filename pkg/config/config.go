package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"liyu1981.xyz/battlogger/pkg/common"
)

const (
	DBTypeFile   = "file"
	DBTypeMemory = "memory"

	DefaultHTTPHostPort = ":3000"
	DefaultRate         = 10.0
	DefaultBurst        = 20
)

type Config struct {
	DBType       string
	DBPath       string
	HTTPHostPort string
	GRPCHostPort string // empty disables gRPC
	DefaultRate  float64
	DefaultBurst int
	HTTPRate     float64 // zero leaves REST writes unlimited
}

// Load reads the given env files, or .env when none are named, into the
// process environment and builds a Config from it. Missing files are not an
// error; variables already set in the environment win over file values.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		DBType:       envOr(common.EnvKeyDBType, DBTypeFile),
		DBPath:       strings.TrimSpace(os.Getenv(common.EnvKeyDbPath)),
		HTTPHostPort: envOr(common.EnvKeyHttpHostPort, DefaultHTTPHostPort),
		GRPCHostPort: strings.TrimSpace(os.Getenv(common.EnvKeyGrpcHostPort)),
		DefaultRate:  DefaultRate,
		DefaultBurst: DefaultBurst,
	}

	switch cfg.DBType {
	case DBTypeFile, DBTypeMemory:
	default:
		return nil, fmt.Errorf("unknown %s: %q", common.EnvKeyDBType, cfg.DBType)
	}

	if raw := strings.TrimSpace(os.Getenv(common.EnvKeyDefaultRate)); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate <= 0 {
			return nil, fmt.Errorf("invalid %s %q, should be a positive float64 value", common.EnvKeyDefaultRate, raw)
		}
		cfg.DefaultRate = rate
	}

	if raw := strings.TrimSpace(os.Getenv(common.EnvKeyDefaultBurst)); raw != "" {
		burst, err := strconv.Atoi(raw)
		if err != nil || burst <= 0 {
			return nil, fmt.Errorf("invalid %s %q, should be a positive int value", common.EnvKeyDefaultBurst, raw)
		}
		cfg.DefaultBurst = burst
	}

	if raw := strings.TrimSpace(os.Getenv(common.EnvKeyHttpRate)); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate < 0 {
			return nil, fmt.Errorf("invalid %s %q, should be a non negative float64 value", common.EnvKeyHttpRate, raw)
		}
		cfg.HTTPRate = rate
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

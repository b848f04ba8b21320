package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/specialistvlad/patrolgrid/internal/ctxlog"
)

// EnvPrefix prefixes every environment variable the tool reads.
const EnvPrefix = "PATROLGRID_"

// defaultEnvFile is read when present and no env file is named explicitly.
const defaultEnvFile = ".env"

// LoadEnv collects PATROLGRID_* settings from the process environment and
// from the given .env files. Process variables win over file values. With no
// files given, ./.env is used if it exists.
func LoadEnv(ctx context.Context, files ...string) (*Overrides, error) {
	logger := ctxlog.FromContext(ctx)

	if len(files) == 0 {
		if _, err := os.Stat(defaultEnvFile); err == nil {
			files = []string{defaultEnvFile}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", defaultEnvFile, err)
		}
	}

	fileVals := map[string]string{}
	if len(files) > 0 {
		vals, err := godotenv.Read(files...)
		if err != nil {
			return nil, fmt.Errorf("failed to read env files %v: %w", files, err)
		}
		fileVals = vals
		logger.Debug("Env files read.", "files", files, "keys", len(vals))
	}

	return FromEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	})
}

// FromEnv builds Overrides from a variable lookup function such as
// os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (*Overrides, error) {
	o := &Overrides{}
	var err error

	if v, ok := lookup(EnvPrefix + "INPUT"); ok {
		o.Input = &v
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		o.LogLevel = &v
	}
	if v, ok := lookup(EnvPrefix + "LOG_FORMAT"); ok {
		o.LogFormat = &v
	}
	if o.Part, err = envInt(lookup, "PART"); err != nil {
		return nil, err
	}
	if o.Workers, err = envInt(lookup, "WORKERS"); err != nil {
		return nil, err
	}
	if o.HealthcheckPort, err = envInt(lookup, "HEALTHCHECK_PORT"); err != nil {
		return nil, err
	}
	if v, ok := lookup(EnvPrefix + "VIEW"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("environment variable %sVIEW must be a boolean: %w", EnvPrefix, err)
		}
		o.View = &b
	}
	return o, nil
}

func envInt(lookup func(string) (string, bool), name string) (*int, error) {
	v, ok := lookup(EnvPrefix + name)
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return nil, fmt.Errorf("environment variable %s%s must be an integer: %w", EnvPrefix, name, err)
	}
	return &n, nil
}

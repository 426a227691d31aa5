// Package config loads CLI settings from the environment, optionally seeded
// from an env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"

	"github.com/goliatone/go-formkit/pkg/logging"
	"github.com/goliatone/go-formkit/pkg/textutil"
)

// DefaultPrefix namespaces the environment variables.
const DefaultPrefix = "FORMKIT"

// DefaultEnvFile is read when no env file is given and it exists.
const DefaultEnvFile = ".env"

// Config holds the CLI settings, e.g. FORMKIT_LOG_DEBUG, FORMKIT_ID_LENGTH.
type Config struct {
	Log            logging.Config
	IDLength       int  `envconfig:"ID_LENGTH" default:"8"`
	NormalizePaths bool `split_words:"true" default:"false"`
}

// Load exports envFile (or DefaultEnvFile when present) into the process
// environment and processes variables under prefix.
func Load(prefix, envFile string) (*Config, error) {
	if strings.TrimSpace(prefix) == "" {
		prefix = DefaultPrefix
	}

	if path := strings.TrimSpace(envFile); path != "" {
		if err := exportEnvironment(path); err != nil {
			return nil, fmt.Errorf("config: load env file: %w", err)
		}
	} else if err := exportEnvironmentIfExists(DefaultEnvFile); err != nil {
		return nil, fmt.Errorf("config: load default env file: %w", err)
	}

	var conf Config
	if err := envconfig.Process(prefix, &conf); err != nil {
		return nil, fmt.Errorf("config: process environment: %w", err)
	}
	if conf.IDLength <= 0 {
		conf.IDLength = textutil.DefaultIDLength
	}
	return &conf, nil
}

func exportEnvironmentIfExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return nil
	}
	return exportEnvironment(path)
}

// exportEnvironment copies every key of the file into the environment,
// upper-cased, without overriding variables that are already set.
func exportEnvironment(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if strings.HasSuffix(path, ".env") {
		v.SetConfigType("env")
	}
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	for k, val := range v.AllSettings() {
		key := strings.ToUpper(k)
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, fmt.Sprint(val)); err != nil {
			return err
		}
	}
	return nil
}

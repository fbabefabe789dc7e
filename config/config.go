// Package config layers sampler/solver settings from defaults, an
// optional YAML file, and NIYA_-prefixed environment variables, in that
// order of increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Keys for the settings this package knows about.
const (
	KeyWorkers   = "workers"
	KeyBatchSize = "batch_size"
	KeySkipP2    = "skip_p2"
	KeyDBPath    = "db_path"
	KeyTarget    = "target"
)

// Config is a thin typed wrapper around a viper instance.
type Config struct {
	v *viper.Viper
}

// New builds a Config from built-in defaults, then (if present) the YAML
// file at path, then NIYA_-prefixed environment variables.
func New(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("NIYA")
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
			var raw map[string]interface{}
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
			// Merged as the config-file layer, which environment
			// variables outrank.
			if err := v.MergeConfigMap(raw); err != nil {
				return nil, fmt.Errorf("config: merge %s: %w", path, err)
			}
			log.Info().Str("path", path).Msg("config-file-loaded")
		} else {
			log.Debug().Str("path", path).Msg("config-file-not-found-using-defaults")
		}
	}

	return &Config{v: v}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyBatchSize, 10)
	v.SetDefault(KeySkipP2, false)
	v.SetDefault(KeyDBPath, filepath.Join("data", "niya.db"))
	v.SetDefault(KeyTarget, 0)
}

// Workers returns the configured worker-pool size.
func (c *Config) Workers() int { return c.v.GetInt(KeyWorkers) }

// BatchSize returns the configured per-worker flush batch size.
func (c *Config) BatchSize() int { return c.v.GetInt(KeyBatchSize) }

// SkipP2 returns whether Phase 2 P2 reply enumeration should be skipped.
func (c *Config) SkipP2() bool { return c.v.GetBool(KeySkipP2) }

// DBPath returns the configured SQLite database file path.
func (c *Config) DBPath() string { return c.v.GetString(KeyDBPath) }

// Target returns the configured total-boards target, or 0 for unbounded.
func (c *Config) Target() int { return c.v.GetInt(KeyTarget) }

// SetWorkers overrides the worker count, e.g. from a CLI flag.
func (c *Config) SetWorkers(n int) { c.v.Set(KeyWorkers, n) }

// SetBatchSize overrides the batch size, e.g. from a CLI flag.
func (c *Config) SetBatchSize(n int) { c.v.Set(KeyBatchSize, n) }

// SetSkipP2 overrides the skip-P2 flag, e.g. from a CLI flag.
func (c *Config) SetSkipP2(skip bool) { c.v.Set(KeySkipP2, skip) }

// SetDBPath overrides the database path, e.g. from a CLI flag.
func (c *Config) SetDBPath(path string) { c.v.Set(KeyDBPath, path) }

// SetTarget overrides the target board count, e.g. from a CLI flag.
func (c *Config) SetTarget(n int) { c.v.Set(KeyTarget, n) }

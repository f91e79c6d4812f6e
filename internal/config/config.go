// Package config resolves run settings from defaults, an optional TOML file
// and the environment. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"image-distorter/internal/codec"
	"image-distorter/internal/distortion"
	"image-distorter/internal/logger"

	"github.com/BurntSushi/toml"
)

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type Config struct {
	// Codec selects the decode/encode backend: "opencv" or "imaging".
	Codec string `toml:"codec"`
	// Seed makes a run reproducible; 0 reseeds from system entropy per image.
	Seed int64 `toml:"seed"`
	// Probability is the chance each distortion stage fires.
	Probability float64   `toml:"probability"`
	Log         LogConfig `toml:"log"`
}

func Default() Config {
	return Config{
		Codec:       codec.NameOpenCV,
		Probability: distortion.DefaultProbability,
		Log: LogConfig{
			Level:  "info",
			Format: string(logger.FormatConsole),
		},
	}
}

// Load reads path over the defaults and then applies the environment. An
// empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}

	cfg.ApplyEnv(os.Getenv)
	return cfg, cfg.Validate()
}

// ApplyEnv honours LOG_LEVEL, and DEBUG=1 when LOG_LEVEL is unset.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if level := getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
		return
	}
	if getenv("DEBUG") == "1" {
		c.Log.Level = "debug"
	}
}

func (c Config) Validate() error {
	var errs []error

	if _, err := codec.New(c.Codec); err != nil {
		errs = append(errs, err)
	}
	if c.Probability < 0 || c.Probability > 1 {
		errs = append(errs, fmt.Errorf("probability must be within [0,1], got %g", c.Probability))
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if _, err := logger.ParseFormat(c.Log.Format); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

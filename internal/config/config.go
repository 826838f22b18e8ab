// Package config loads the reduce CLI's .reduce.jsonc configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tailscale/hujson"
)

// FileName is the default config file name looked for in the working
// directory.
const FileName = ".reduce.jsonc"

// DefaultTimeout is used when neither the config file nor a CLI flag sets
// the per-candidate timeout.
const DefaultTimeout = 5 * time.Second

var (
	// ErrFileNotFound is returned when an explicit --config path does not exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrInvalid is returned when a config file fails to parse.
	ErrInvalid = errors.New("invalid config file")
)

// Config holds the options that can come from .reduce.jsonc.
type Config struct {
	// Timeout is the per-candidate test-command timeout.
	Timeout time.Duration `json:"timeout,omitempty"`

	// WorkDir, if set, is the directory the test command runs in.
	WorkDir string `json:"workdir,omitempty"`
}

// Default returns the built-in defaults, used when no config file is
// present and no CLI flag overrides a field.
func Default() Config {
	return Config{
		Timeout: DefaultTimeout,
	}
}

// rawConfig mirrors Config but keeps Timeout as a string, since
// time.Duration doesn't implement encoding/json's text marshaling.
type rawConfig struct {
	Timeout string `json:"timeout,omitempty"`
	WorkDir string `json:"workdir,omitempty"`
}

// Overrides holds CLI-flag-supplied values. A zero value in a field means
// "not set on the command line"; HasTimeout/HasWorkDir distinguish that
// from an explicit zero.
type Overrides struct {
	Timeout    time.Duration
	HasTimeout bool

	WorkDir    string
	HasWorkDir bool
}

// Load resolves the effective config with precedence (lowest to highest):
// built-in defaults, the config file at path (or FileName in workDir if
// path is empty and that file exists), then CLI overrides.
//
// If path is non-empty the file must exist. If path is empty, a missing
// default file is not an error.
func Load(workDir, path string, overrides Overrides) (Config, error) {
	cfg := Default()

	fileCfg, loaded, err := loadFile(workDir, path)
	if err != nil {
		return Config{}, err
	}

	if loaded {
		cfg = merge(cfg, fileCfg)
	}

	if overrides.HasTimeout {
		cfg.Timeout = overrides.Timeout
	}

	if overrides.HasWorkDir {
		cfg.WorkDir = overrides.WorkDir
	}

	return cfg, nil
}

func loadFile(workDir, path string) (Config, bool, error) {
	mustExist := path != ""

	cfgPath := path
	if cfgPath == "" {
		cfgPath = filepath.Join(workDir, FileName)
	} else if !filepath.IsAbs(cfgPath) {
		cfgPath = filepath.Join(workDir, cfgPath)
	}

	data, err := os.ReadFile(cfgPath) //nolint:gosec // path is from caller-controlled flags
	if err != nil {
		if os.IsNotExist(err) {
			if mustExist {
				return Config{}, false, fmt.Errorf("%w: %s", ErrFileNotFound, path)
			}

			return Config{}, false, nil
		}

		return Config{}, false, fmt.Errorf("reading %s: %w", cfgPath, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrInvalid, cfgPath, err)
	}

	return cfg, true, nil
}

func parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var raw rawConfig

	if err := json.Unmarshal(standardized, &raw); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	cfg := Config{WorkDir: raw.WorkDir}

	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("timeout: %w", err)
		}

		cfg.Timeout = d
	}

	return cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.Timeout != 0 {
		base.Timeout = overlay.Timeout
	}

	if overlay.WorkDir != "" {
		base.WorkDir = overlay.WorkDir
	}

	return base
}

// Format returns cfg as indented JSON, mainly useful for debugging.
func Format(cfg Config) (string, error) {
	raw := rawConfig{
		Timeout: cfg.Timeout.String(),
		WorkDir: cfg.WorkDir,
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format config: %w", err)
	}

	return string(data), nil
}

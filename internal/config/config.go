// Package config loads solint options from TOML rc files.
//
// Files are read in order and later files override earlier ones:
// /etc/solint.toml, ~/.solint.toml, ./.solint.toml and finally an explicit
// --config file. Command-line flags are applied on top by the cmd package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Error levels accepted by ErrorLevel.
const (
	LevelError   = "error"
	LevelWarning = "warning"
	LevelAll     = "all"
)

// FileName is the rc file name looked up in the home and working directories.
const FileName = ".solint.toml"

// SystemFile is the system-wide rc file.
const SystemFile = "/etc/solint.toml"

// Config holds every option understood by solint.
type Config struct {
	WithContext     bool     `toml:"with_context"`
	WithFilename    bool     `toml:"with_filename"`
	FailOnWarnings  bool     `toml:"fail_on_warnings"`
	ErrorLevel      string   `toml:"error_level" validate:"oneof=error warning all"`
	ShowIgnored     bool     `toml:"show_ignored"`
	LogFormat       string   `toml:"log_format"`
	Fix             bool     `toml:"fix"`
	OnlyChecks      []string `toml:"only_checks" validate:"dive,required"`
	DisabledChecks  []string `toml:"disabled_checks" validate:"dive,required"`
	Parallel        int      `toml:"parallel" validate:"gte=1,lte=256"`
	Color           bool     `toml:"color"`
	Summary         bool     `toml:"summary"`
	Reports         string   `toml:"reports"`
	IgnoreOverrides bool     `toml:"ignore_overrides"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ErrorLevel:      LevelAll,
		Parallel:        1,
		IgnoreOverrides: true,
	}
}

// Paths returns the rc files consulted by Load, in precedence order.
func Paths() []string {
	paths := []string{SystemFile}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, FileName))
	}

	return append(paths, FileName)
}

// Load reads the default rc files and then extra, overlaying each onto the
// defaults. Missing rc files and unreadable home files are skipped; a
// missing extra file is an error.
func Load(extra string) (Config, error) {
	cfg := Default()

	for _, path := range Paths() {
		if err := decodeOptional(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if extra != "" {
		if _, err := toml.DecodeFile(extra, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to load config %s: %w", extra, err)
		}
	}

	return cfg, nil
}

func decodeOptional(path string, cfg *Config) error {
	_, err := toml.DecodeFile(path, cfg)
	if err == nil || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return nil
	}

	return fmt.Errorf("failed to load config %s: %w", path, err)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks option values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid %s: %q fails %q", verrs[0].Field(), fmt.Sprint(verrs[0].Value()), verrs[0].Tag())
		}

		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

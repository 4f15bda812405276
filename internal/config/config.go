package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/acpitools/amltohex/internal/aml"
	"github.com/acpitools/amltohex/pkg/log"
)

// DefaultManifest is the manifest file name used when none is given.
const DefaultManifest = "amltohex.yaml"

// Config represents a batch manifest parsed from amltohex.yaml.
// It lists the AML tables to convert and the settings shared by all of them.
type Config struct {
	// OutDir is the default output directory. Empty means next to each input.
	OutDir string `yaml:"out_dir"`
	// Identity overrides the tool identity written into generated headers.
	Identity string `yaml:"identity"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
	// Tables is the list of AML files to convert.
	Tables []Table `yaml:"tables"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path.
	Path string `yaml:"path"`
}

// Table is a single AML input.
type Table struct {
	// Input is the path to the AML file, relative to the manifest's directory.
	Input string `yaml:"input"`
	// OutDir overrides Config.OutDir for this table.
	OutDir string `yaml:"out_dir"`
}

// Load reads and parses the manifest at path, applies defaults, resolves relative
// paths against the manifest's directory, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ApplyDefaults(&cfg)
	cfg.resolvePaths(filepath.Dir(path))

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) resolvePaths(base string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	c.OutDir = abs(c.OutDir)
	c.Logging.Path = abs(c.Logging.Path)
	for i := range c.Tables {
		c.Tables[i].Input = abs(c.Tables[i].Input)
		c.Tables[i].OutDir = abs(c.Tables[i].OutDir)
	}
}

// OutDirFor returns the output directory for t, falling back to the manifest default.
func (c *Config) OutDirFor(t Table) string {
	if t.OutDir != "" {
		return t.OutDir
	}
	return c.OutDir
}

// Validate checks the configuration for errors, such as duplicate inputs
// or two tables that would overwrite the same .hex file.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(config *Config) error {
	if len(config.Tables) == 0 {
		return fmt.Errorf("no tables listed")
	}

	seenInputs := make(map[string]bool)
	seenOutputs := make(map[string]string)
	for i, t := range config.Tables {
		if strings.TrimSpace(t.Input) == "" {
			return fmt.Errorf("table %d: input is empty", i)
		}
		input := filepath.Clean(t.Input)
		if seenInputs[input] {
			return fmt.Errorf("duplicate input: %s", t.Input)
		}
		seenInputs[input] = true

		// Mirrors the output path derivation of the validator.
		outDir := config.OutDirFor(t)
		if outDir == "" {
			outDir = filepath.Dir(input)
		}
		output := filepath.Join(outDir, aml.BaseName(input)+aml.HexExt)
		if prev, ok := seenOutputs[output]; ok {
			return fmt.Errorf("inputs %s and %s both generate %s", prev, t.Input, output)
		}
		seenOutputs[output] = t.Input
	}

	if !log.ValidLevel(config.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s (allowed: %s)", config.Logging.Level, strings.Join(log.Levels, ", "))
	}

	return nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
//
// Parameters:
//   - config: The Config object to modify.
func ApplyDefaults(config *Config) {
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/beatoz/fxmath-go/accuracy"
	"github.com/beatoz/fxmath-go/libs"
	tmos "github.com/tendermint/tendermint/libs/os"
)

const (
	LogFormatPlain = "plain"
	LogFormatJSON  = "json"

	DefaultLogLevel = "info"

	defaultConfigDir  = "config"
	defaultDataDir    = "data"
	defaultConfigName = "config.toml"
	defaultBaseline   = "baseline"
)

// Config is read by viper from <home>/config/config.toml, the environment
// (FXMATH_ prefix) and the command line, in increasing priority.
type Config struct {
	RootDir   string `mapstructure:"home"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// Width is the default fixed-point width of `eval`: 16 or 32.
	Width int `mapstructure:"width"`

	Accuracy *AccuracyConfig `mapstructure:"accuracy"`
}

type AccuracyConfig struct {
	RootDir string `mapstructure:"home"`

	Strategy     string `mapstructure:"strategy"`
	Exact        bool   `mapstructure:"exact"`
	BaselineDir  string `mapstructure:"baseline_dir"`
	BaselineName string `mapstructure:"baseline_name"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: LogFormatPlain,
		Width:     32,
		Accuracy:  DefaultAccuracyConfig(),
	}
}

func DefaultAccuracyConfig() *AccuracyConfig {
	return &AccuracyConfig{
		Strategy:     accuracy.Quick.Name,
		BaselineDir:  defaultDataDir,
		BaselineName: defaultBaseline,
	}
}

func (cfg *Config) SetRoot(root string) *Config {
	cfg.RootDir = root
	cfg.Accuracy.RootDir = root
	return cfg
}

func (cfg *Config) ValidateBasic() error {
	if cfg.Width != 16 && cfg.Width != 32 {
		return fmt.Errorf("width must be 16 or 32, got %d", cfg.Width)
	}
	switch cfg.LogFormat {
	case LogFormatPlain, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log_format %q", cfg.LogFormat)
	}
	if err := cfg.Accuracy.ValidateBasic(); err != nil {
		return fmt.Errorf("error in [accuracy] section: %w", err)
	}
	return nil
}

func (cfg *Config) ConfigFile() string {
	return rootify(filepath.Join(defaultConfigDir, defaultConfigName), cfg.RootDir)
}

func (cfg *AccuracyConfig) ValidateBasic() error {
	if _, xerr := accuracy.StrategyByName(cfg.Strategy); xerr != nil {
		return xerr
	}
	if cfg.BaselineName == "" {
		return fmt.Errorf("baseline_name is empty")
	}
	return nil
}

// BaselineDBDir is the directory of the baseline store.
func (cfg *AccuracyConfig) BaselineDBDir() string {
	return rootify(cfg.BaselineDir, cfg.RootDir)
}

// EnsureRoot creates the home directory layout.
func EnsureRoot(rootDir string) {
	if err := tmos.EnsureDir(rootDir, 0o700); err != nil {
		panic(err.Error())
	}
	if err := tmos.EnsureDir(filepath.Join(rootDir, defaultConfigDir), 0o700); err != nil {
		panic(err.Error())
	}
	if err := tmos.EnsureDir(filepath.Join(rootDir, defaultDataDir), 0o700); err != nil {
		panic(err.Error())
	}
}

// WriteConfigFile renders cfg as TOML to path.
func WriteConfigFile(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := configTemplate.Execute(&buf, cfg); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func rootify(path, root string) string {
	path = libs.ExpandHome(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(libs.ExpandHome(root), path)
}

var configTemplate = template.Must(template.New("config").Parse(`# fxmath configuration

# Output level of the logger, either one level ("info") or a list of
# module:level pairs ("main:info,accuracy:debug,*:error").
log_level = "{{ .LogLevel }}"

# "plain" or "json".
log_format = "{{ .LogFormat }}"

# Default fixed-point width of "eval": 16 (I16F16) or 32 (I32F32).
width = {{ .Width }}

[accuracy]

# Sampling strategy: "quick" or "thorough".
strategy = "{{ .Accuracy.Strategy }}"

# Compare against arbitrary-precision references where available.
exact = {{ .Accuracy.Exact }}

# Directory of the baseline database, relative to the home directory.
baseline_dir = "{{ .Accuracy.BaselineDir }}"
baseline_name = "{{ .Accuracy.BaselineName }}"
`))

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig().SetRoot("/tmp/fxmath")
	require.NoError(t, cfg.ValidateBasic())
	require.Equal(t, "/tmp/fxmath/data", cfg.Accuracy.BaselineDBDir())
	require.Equal(t, "/tmp/fxmath/config/config.toml", cfg.ConfigFile())

	cfg.Accuracy.BaselineDir = "/var/lib/fxmath"
	require.Equal(t, "/var/lib/fxmath", cfg.Accuracy.BaselineDBDir())
}

func TestHomeRelativePaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.Reset()
	defer homedir.Reset()

	cfg := DefaultConfig().SetRoot("~/.fxmath")
	require.Equal(t, filepath.Join(home, ".fxmath", "config", "config.toml"), cfg.ConfigFile())
	require.Equal(t, filepath.Join(home, ".fxmath", "data"), cfg.Accuracy.BaselineDBDir())

	cfg.Accuracy.BaselineDir = "~/baselines"
	require.Equal(t, filepath.Join(home, "baselines"), cfg.Accuracy.BaselineDBDir())
}

func TestValidateBasic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 24
	require.Error(t, cfg.ValidateBasic())

	cfg = DefaultConfig()
	cfg.LogFormat = "xml"
	require.Error(t, cfg.ValidateBasic())

	cfg = DefaultConfig()
	cfg.Accuracy.Strategy = "exhaustive"
	require.ErrorContains(t, cfg.ValidateBasic(), "[accuracy]")
}

func TestWriteConfigFileRoundTrip(t *testing.T) {
	root := t.TempDir()
	EnsureRoot(root)

	cfg := DefaultConfig().SetRoot(root)
	cfg.Width = 16
	cfg.LogLevel = "main:debug,*:error"
	cfg.Accuracy.Strategy = "thorough"
	cfg.Accuracy.Exact = true
	require.NoError(t, WriteConfigFile(cfg.ConfigFile(), cfg))

	_, err := os.Stat(filepath.Join(root, "data"))
	require.NoError(t, err)

	v := viper.New()
	v.SetConfigFile(cfg.ConfigFile())
	require.NoError(t, v.ReadInConfig())

	loaded := DefaultConfig()
	require.NoError(t, v.Unmarshal(loaded))
	loaded.SetRoot(root)
	require.Equal(t, cfg, loaded)
}

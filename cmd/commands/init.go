package commands

import (
	cfg "github.com/beatoz/fxmath-go/cmd/config"
	"github.com/spf13/cobra"
	tmos "github.com/tendermint/tendermint/libs/os"
)

// NewInitFilesCmd returns the command that writes the default config file
// into the home directory.
func NewInitFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the fxmath home directory",
		RunE:  initFiles,
	}
	AddInitFlags(cmd)
	return cmd
}

func AddInitFlags(cmd *cobra.Command) {
	cmd.Flags().Int(
		"width",
		rootConfig.Width,
		"default fixed-point width of `eval`: 16 or 32")
	AddAccuracyConfigFlags(cmd)
}

func initFiles(cmd *cobra.Command, args []string) error {
	return InitFilesWith(rootConfig)
}

// InitFilesWith writes config as <home>/config/config.toml unless the file
// already exists.
func InitFilesWith(config *cfg.Config) error {
	cfg.EnsureRoot(config.RootDir)

	cfgFile := config.ConfigFile()
	if tmos.FileExists(cfgFile) {
		logger.Info("Found config file", "path", cfgFile)
		return nil
	}
	if err := cfg.WriteConfigFile(cfgFile, config); err != nil {
		return err
	}
	logger.Info("Generated config file", "path", cfgFile)
	return nil
}

package main

import (
	"path/filepath"

	"github.com/beatoz/fxmath-go/cmd/commands"
	"github.com/beatoz/fxmath-go/libs"
	"github.com/tendermint/tendermint/libs/cli"
)

func main() {
	commands.RootCmd.AddCommand(
		commands.NewInitFilesCmd(),
		commands.NewEvalCmd(),
		commands.FuncsCmd,
		commands.NewTablesCmd(),
		commands.NewAccuracyCmd(),
		commands.VersionCmd,
	)

	executor := cli.PrepareBaseCmd(commands.RootCmd, "FXMATH", filepath.Join(libs.GetHome(), ".fxmath"))
	if err := executor.Execute(); err != nil {
		panic(err)
	}
}

package commands

import (
	"fmt"

	"github.com/beatoz/fxmath-go/libs/fxnum"
	"github.com/beatoz/fxmath-go/libs/jsonx"
	"github.com/beatoz/fxmath-go/tables"
	"github.com/spf13/cobra"
)

var (
	tablesIntBits     uint
	tablesFracBits    uint
	tablesFingerprint bool
)

// TableDump is the JSON form of a generated table.
type TableDump struct {
	Format      string        `json:"format"`
	Fingerprint string        `json:"fingerprint"`
	Table       *tables.Table `json:"table"`
}

func NewTablesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the CORDIC tables and constants of a format",
		Long: "Print the CORDIC tables and constants of a format as JSON. " +
			"Two machines that print the same fingerprint evaluate every function identically.",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := fxnum.Format{IntBits: tablesIntBits, FracBits: tablesFracBits}
			t, xerr := tables.For(f)
			if xerr != nil {
				return xerr
			}
			logger.Debug("table built", "format", f, "iterations", t.Iterations(), "steps", len(t.Schedule))

			if tablesFingerprint {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Fingerprint())
				return err
			}
			bz, err := jsonx.MarshalIndent(TableDump{
				Format:      f.String(),
				Fingerprint: t.Fingerprint(),
				Table:       t,
			}, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return err
		},
	}
	cmd.Flags().UintVar(&tablesIntBits, "int_bits", 32, "integer bits of the format, sign included")
	cmd.Flags().UintVar(&tablesFracBits, "frac_bits", 32, "fractional bits of the format")
	cmd.Flags().BoolVar(&tablesFingerprint, "fingerprint", false, "print only the table fingerprint")
	return cmd
}

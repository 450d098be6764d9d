package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/beatoz/fxmath-go/libs/jsonx"
	"github.com/beatoz/fxmath-go/ops"
	"github.com/beatoz/fxmath-go/types"
	"github.com/beatoz/fxmath-go/types/xerrors"
	"github.com/spf13/cobra"
)

var evalJSON bool

func NewEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <func> <arg>...",
		Short: "Evaluate one function on decimal arguments",
		Example: "  fxmath eval sin 0.5\n" +
			"  fxmath eval --width 16 atan2 1 -1\n" +
			"  fxmath eval pow 2 0.5 --json",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := types.FuncByName(args[0])
			if !ok {
				return xerrors.ErrUnknownFunc.Wrapf("%q", args[0])
			}
			out := cmd.OutOrStdout()
			if rootConfig.Width == 16 {
				return evalAndPrint[types.I16F16](out, fn, args[1:], evalJSON)
			}
			return evalAndPrint[types.I32F32](out, fn, args[1:], evalJSON)
		},
	}
	cmd.Flags().Int("width", rootConfig.Width, "fixed-point width: 16 (I16F16) or 32 (I32F32)")
	cmd.Flags().BoolVar(&evalJSON, "json", false, "print the result as JSON with raw values")
	return cmd
}

// EvalOutput is the JSON form of one evaluation.
type EvalOutput struct {
	Func    string  `json:"func"`
	Format  string  `json:"format"`
	Args    []Value `json:"args"`
	Results []Value `json:"results"`
}

// Value is one argument or result. Fixed is the value rounded to seven
// decimal places.
type Value struct {
	Text  string `json:"text"`
	Fixed string `json:"fixed"`
	Raw   int64  `json:"raw"`
}

func valuesOf[T types.Number](xs []T) []Value {
	f := types.FormatOf[T]()
	ret := make([]Value, len(xs))
	for i, x := range xs {
		ret[i] = Value{Text: f.Text(int64(x)), Fixed: f.ToFixed(int64(x)).String(), Raw: int64(x)}
	}
	return ret
}

func evalAndPrint[T types.Number](w io.Writer, fn types.Func, strArgs []string, asJSON bool) error {
	args := make([]T, len(strArgs))
	for i, s := range strArgs {
		v, xerr := types.Parse[T](s)
		if xerr != nil {
			return xerr.Wrapf("argument %d", i+1)
		}
		args[i] = v
	}

	ret, xerr := ops.Eval(fn, args...)
	if xerr != nil {
		return xerr
	}
	logger.Debug("evaluated", "func", fn, "format", types.FormatOf[T](), "args", strArgs)

	if asJSON {
		bz, err := jsonx.MarshalIndent(EvalOutput{
			Func:    fn.String(),
			Format:  types.FormatOf[T]().String(),
			Args:    valuesOf(args),
			Results: valuesOf(ret),
		}, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(bz))
		return err
	}

	for _, v := range valuesOf(ret) {
		if _, err := fmt.Fprintln(w, v.Text); err != nil {
			return err
		}
	}
	return nil
}

// FuncsCmd lists the functions eval accepts.
var FuncsCmd = &cobra.Command{
	Use:   "funcs",
	Short: "List the available functions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeFuncs(cmd.OutOrStdout())
	},
}

func writeFuncs(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tGROUP\tCLASS\tARGS\tRESULTS")
	for _, fn := range types.AllFuncs() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", fn, fn.Group(), fn.Class(), fn.Args(), fn.Results())
	}
	return tw.Flush()
}

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/compusuave/integral"
)

type rootParams struct {
	base    int
	typ     string
	all     bool
	strict  bool
	verbose bool
}

type baseLabel struct {
	name string
	base int
}

var allBases = []baseLabel{
	{name: "bin", base: 2},
	{name: "oct", base: 8},
	{name: "dec", base: 10},
	{name: "hex", base: 16},
}

func execRootCmd(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

func newRootCmd() *cobra.Command {
	params := rootParams{}
	cmd := &cobra.Command{
		Use:   "intconv [flags] VALUE...",
		Short: "Parse prefixed integer literals and print them in any radix",
		Long: `Intconv parses each VALUE with prefix-aware base detection
("0b"/"0B" binary, lowercase "0x" hex, leading "0" octal, decimal
otherwise) and prints it in the requested output radix.

Values that contain no usable digit print as 0 unless --strict is set.
Use "--" before negative decimal values.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := lo.Ternary(params.verbose,
				integral.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})),
				integral.NoopLogger(),
			)
			return run(cmd.OutOrStdout(), params, args, logger)
		},
	}

	cmd.Flags().IntVarP(&params.base, "base", "b", 10, "output radix; values outside [2,16] coerce to 10")
	cmd.Flags().StringVarP(&params.typ, "type", "t", "i64", "target width: i8, i16, i32, i64, u8, u16, u32 or u64")
	cmd.Flags().BoolVarP(&params.all, "all", "a", false, "print bin, oct, dec and hex for each value")
	cmd.Flags().BoolVar(&params.strict, "strict", false, "fail on values that parse to nothing")
	cmd.Flags().BoolVar(&params.verbose, "verbose", false, "log absorbed parse failures to stderr")

	return cmd
}

func run(out io.Writer, params rootParams, args []string, logger *integral.Logger) error {
	for _, arg := range args {
		if params.all {
			parts, err := renderAll(params.typ, arg, params.strict, logger)
			logger.LogConvert(arg, params.typ, err)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, strings.Join(parts, " "))
			continue
		}

		s, err := render(params.typ, arg, params.base, params.strict, logger)
		logger.LogConvert(arg, params.typ, err)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
	}
	return nil
}

func renderAll(typ, arg string, strict bool, logger *integral.Logger) ([]string, error) {
	var firstErr error
	parts := lo.Map(allBases, func(b baseLabel, _ int) string {
		s, err := render(typ, arg, b.base, strict, logger)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return b.name + "=" + s
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return parts, nil
}

// render parses arg at the requested width and formats it in base.
// Strict mode rejects inputs without a single digit; clamped values are
// still printed, matching the library's absorbing contract.
func render(typ, arg string, base int, strict bool, logger *integral.Logger) (string, error) {
	switch typ {
	case "i8":
		return renderAs[int8](arg, base, strict, logger)
	case "i16":
		return renderAs[int16](arg, base, strict, logger)
	case "i32":
		return renderAs[int32](arg, base, strict, logger)
	case "i64":
		return renderAs[int64](arg, base, strict, logger)
	case "u8":
		return renderAs[uint8](arg, base, strict, logger)
	case "u16":
		return renderAs[uint16](arg, base, strict, logger)
	case "u32":
		return renderAs[uint32](arg, base, strict, logger)
	case "u64":
		return renderAs[uint64](arg, base, strict, logger)
	default:
		return "", fmt.Errorf("unknown type %q (want i8, i16, i32, i64, u8, u16, u32 or u64)", typ)
	}
}

func renderAs[T integral.Integer](arg string, base int, strict bool, logger *integral.Logger) (string, error) {
	v, err := integral.Parse[T](arg)
	if err != nil {
		if strict && !errors.Is(err, integral.ErrRange) {
			return "", err
		}
		logger.LogAbsorbed(arg, err)
	}
	return v.ToRadix(base), nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/caoguofeng92/drools"
	"github.com/caoguofeng92/drools/engines/types"
	"github.com/caoguofeng92/drools/options"
	"github.com/caoguofeng92/drools/platform/data"
	"github.com/caoguofeng92/drools/platform/script/loader"
	"github.com/spf13/cobra"
)

func (c *cli) newEvalCmd() *cobra.Command {
	var (
		engine string
		input  string
	)

	cmd := &cobra.Command{
		Use:   "eval MODEL",
		Short: "Evaluate the derived fields of a PMML model",
		Long: "Evaluate every derived field of MODEL against the YAML or JSON mapping in\n" +
			"--input and print the results, in model order, as a YAML mapping.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == loader.Stdin && input == loader.Stdin {
				return fmt.Errorf("model and input cannot both be read from standard input")
			}

			engineType, err := types.Parse(engine)
			if err != nil {
				return err
			}

			in, err := c.readInput(input)
			if err != nil {
				return err
			}

			l, err := c.loaderFor(args[0])
			if err != nil {
				return err
			}

			eval, err := drools.NewEvaluator(engineType,
				options.WithLoader(l),
				options.WithLogger(c.handler),
				options.WithSkipUnsupported(c.skipUnsupported),
			)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, err = eval.AddDataToContext(ctx, in)
			if err != nil {
				return err
			}

			resp, err := eval.Eval(ctx)
			if err != nil {
				return err
			}
			return data.ToYAML(cmd.OutOrStdout(), resp.Outputs())
		},
	}
	cmd.Flags().StringVar(&engine, "engine", string(types.Starlark), "engine: starlark or risor")
	cmd.Flags().StringVar(&input, "input", "", "YAML or JSON input mapping, or - for standard input")
	return cmd
}

// readInput decodes the input mapping. No path means an empty input.
func (c *cli) readInput(path string) (data.Context, error) {
	var r io.Reader
	switch path {
	case "":
		return data.Context{}, nil
	case loader.Stdin:
		r = c.stdin
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	return data.FromYAML(r)
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/caoguofeng92/drools"
	risorEngine "github.com/caoguofeng92/drools/engines/risor"
	risorCompiler "github.com/caoguofeng92/drools/engines/risor/compiler"
	starlarkEngine "github.com/caoguofeng92/drools/engines/starlark"
	starlarkCompiler "github.com/caoguofeng92/drools/engines/starlark/compiler"
	"github.com/caoguofeng92/drools/engines/types"
	"github.com/caoguofeng92/drools/platform/script"
	"github.com/caoguofeng92/drools/platform/script/loader"
	"github.com/caoguofeng92/drools/procedure"
	"github.com/spf13/cobra"
)

// engineIR prints the procedures themselves instead of engine source.
const engineIR = "ir"

func (c *cli) newCompileCmd() *cobra.Command {
	var engine string

	cmd := &cobra.Command{
		Use:   "compile MODEL",
		Short: "Print the procedures compiled from a PMML model",
		Long: "Compile the DefineFunction and DerivedField elements of MODEL and print them.\n" +
			"MODEL is a file path, or - for standard input.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := c.compileModel(args[0])
			if err != nil {
				return err
			}
			return c.printModule(cmd.OutOrStdout(), module, engine)
		},
	}
	cmd.Flags().StringVar(&engine, "engine", engineIR, "output form: ir, starlark or risor")
	return cmd
}

func (c *cli) compileModel(path string) (*procedure.Module, error) {
	l, err := c.loaderFor(path)
	if err != nil {
		return nil, err
	}
	return drools.CompileModel(c.handler, l, c.skipUnsupported)
}

func (c *cli) loaderFor(path string) (loader.Loader, error) {
	if path == loader.Stdin {
		return loader.NewFromIoReader(c.stdin, "stdin")
	}
	return loader.NewFromDisk(path)
}

func (c *cli) printModule(w io.Writer, module *procedure.Module, engine string) error {
	if engine == engineIR {
		listings := make([]string, 0, module.Len())
		for _, def := range module.Procedures() {
			listings = append(listings, procedure.Format(def))
		}
		_, err := fmt.Fprintln(w, strings.Join(listings, "\n\n"))
		return err
	}

	engineType, err := types.Parse(engine)
	if err != nil {
		return err
	}

	var comp script.Compiler
	switch engineType {
	case types.Starlark:
		comp, err = starlarkEngine.NewCompiler(starlarkCompiler.WithLogHandler(c.handler))
	case types.Risor:
		comp, err = risorEngine.NewCompiler(risorCompiler.WithLogHandler(c.handler))
	}
	if err != nil {
		return err
	}

	content, err := comp.Compile(module)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, content.GetSource())
	return err
}

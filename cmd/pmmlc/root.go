package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// cli holds the state shared by the subcommands.
type cli struct {
	stdin  io.Reader
	stderr io.Writer

	logLevel        string
	skipUnsupported bool
	handler         slog.Handler
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdin: stdin, stderr: stderr}

	root := &cobra.Command{
		Use:          "pmmlc",
		Short:        "Compile and evaluate PMML transformations",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return c.setupLogger()
		},
	}
	root.Version = version + " (commit=" + commit + ")"
	root.SetVersionTemplate("pmmlc version {{.Version}}\n")
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&c.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.BoolVar(&c.skipUnsupported, "skip-unsupported", false,
		"leave out fields whose expression kind is not supported instead of failing")

	root.AddCommand(c.newCompileCmd(), c.newEvalCmd())
	return root
}

// setupLogger sends logs to stderr so stdout only carries results.
func (c *cli) setupLogger() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.logLevel))); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", c.logLevel, err)
	}
	c.handler = slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level})
	return nil
}

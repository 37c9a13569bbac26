// Package cmd provides the root command and CLI setup for gorector.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/gorector/internal/adapter"
	"github.com/mouse-blink/gorector/internal/config"
	"github.com/mouse-blink/gorector/internal/controller"
	"github.com/mouse-blink/gorector/internal/domain"
	"github.com/mouse-blink/gorector/internal/domain/rules"
	rerr "github.com/mouse-blink/gorector/internal/errors"
	m "github.com/mouse-blink/gorector/internal/model"
)

// Exit codes returned by Execute.
const (
	ExitOK             = 0
	ExitFailure        = 1
	ExitChangesPending = 2
)

var configFlag string
var plainFlag bool

// cfg is loaded by the root command before any subcommand runs.
var cfg *config.Config

// newWorkflow wires the workflow for one command. Tests replace it.
var newWorkflow = defaultWorkflow

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gorector [paths...]",
		Short: "PHP refactoring tool",
		Long: `Gorector rewrites PHP sources with a set of refactoring rules.

The main rule finds classes whose non-public properties are written outside
the constructor and makes them reset that state in a dedicated method,
implementing a marker interface. Smaller rules remove echo, exit and die
statements, rename forbidden functions and superglobals, replace the *_once
include forms and drop "static" from arrow functions that use $this.

Without a subcommand the given paths are processed, see "gorector process".`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(configFlag)
			if err != nil {
				return err
			}

			cfg = loaded
			config.NewLogger(cfg.Logging, cmd.ErrOrStderr())

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "configuration file (default: gorector.yaml, gorector.yml or gorector.toml in the working directory)")
	cmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "print plain text even when stdout is a terminal")

	bindProcessFlags(cmd, &rootProcessFlags)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd, args, &rootProcessFlags)
	}

	return cmd
}

// defaultWorkflow wires the production adapters. Watch mode always uses the
// plain UI since every run would otherwise wait for the user to quit.
func defaultWorkflow(cmd *cobra.Command, c *config.Config, ruleIDs []string, useCache, forcePlain bool) (domain.Workflow, error) {
	if len(ruleIDs) == 0 {
		ruleIDs = c.Rules.Enabled
	}

	rs, err := rules.Build(ruleIDs, c.RuleOptions())
	if err != nil {
		return nil, err
	}

	var cache adapter.ResultCache
	if useCache && c.Cache.On() {
		local, err := adapter.NewLocalResultCache(c.Cache.Dir, c.Fingerprint()+strings.Join(ruleIDs, ","))
		if err != nil {
			return nil, err
		}

		cache = local
	}

	useTTY := !plainFlag && !forcePlain && controller.IsTTY(os.Stdout)

	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewTreeSitterPHPAdapter(),
		cache,
		controller.NewUI(cmd, useTTY),
		domain.NewEngine(rs),
		nil,
	), nil
}

func parsePaths(args []string, fallback []string) []m.Path {
	if len(args) == 0 {
		args = fallback
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute adds all child commands to the root command and runs it. It
// returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}

	if rerr.IsCode(err, rerr.CodeChangesDetected) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)

		return ExitChangesPending
	}

	fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)

	if rerr.IsCode(err, rerr.CodeConfig) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Check the configuration file or run \"gorector describe <rule>\".")
	}

	return ExitFailure
}

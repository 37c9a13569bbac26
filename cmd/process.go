package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/gorector/internal/domain"
)

type processFlags struct {
	dryRun   bool
	parallel int
	noCache  bool
	skip     []string
	index    []string
	rules    []string
}

var rootProcessFlags processFlags
var processCmdFlags processFlags

// processCmd represents the process command.
var processCmd = newProcessCmd()

func newProcessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "process [paths...]",
		Aliases: []string{"run"},
		Short:   "Refactor PHP files",
		Long: `Refactor every .php file under the given paths, or under the configured
paths when none are given. With --dry-run nothing is written: the diffs are
shown and the command exits with code 2 when any file would change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, args, &processCmdFlags)
		},
	}

	bindProcessFlags(cmd, &processCmdFlags)

	return cmd
}

func bindProcessFlags(cmd *cobra.Command, f *processFlags) {
	cmd.Flags().BoolVarP(&f.dryRun, "dry-run", "n", false, "show the changes without writing them")
	cmd.Flags().IntVarP(&f.parallel, "parallel", "p", 0, "number of parallel workers (default: configured value or CPU count)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "ignore and do not update the result cache")
	cmd.Flags().StringArrayVarP(&f.skip, "skip", "x", nil, "skip paths matching a glob (can be repeated)")
	cmd.Flags().StringArrayVar(&f.index, "index", nil, "parse files under this path for class ancestry only (can be repeated)")
	cmd.Flags().StringArrayVarP(&f.rules, "rule", "r", nil, "run only this rule (can be repeated)")
}

func (f *processFlags) args(cliPaths []string) domain.ProcessArgs {
	parallel := f.parallel
	if parallel <= 0 {
		parallel = cfg.Parallel
	}

	index := cfg.IndexPaths
	if len(f.index) > 0 {
		index = f.index
	}

	return domain.ProcessArgs{
		Paths:      parsePaths(cliPaths, cfg.Paths),
		IndexPaths: parsePaths(index, nil),
		Skip:       append(append([]string{}, cfg.Skip...), f.skip...),
		Parallel:   parallel,
		DryRun:     f.dryRun,
	}
}

func runProcess(cmd *cobra.Command, args []string, f *processFlags) error {
	wf, err := newWorkflow(cmd, cfg, f.rules, !f.noCache, false)
	if err != nil {
		return err
	}

	_, err = wf.Process(cmd.Context(), f.args(args))

	return err
}

func init() {
	rootCmd.AddCommand(processCmd)
}

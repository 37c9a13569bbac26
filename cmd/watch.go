package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/gorector/internal/domain"
)

var watchCmdFlags processFlags
var watchDebounceFlag time.Duration

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Refactor PHP files whenever they change",
		Long: `Process the given paths once, then again after every batch of .php file
changes until interrupted. Runs that fail are logged and watching goes on;
only configuration errors stop the command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := newWorkflow(cmd, cfg, watchCmdFlags.rules, !watchCmdFlags.noCache, true)
			if err != nil {
				return err
			}

			debounce := watchDebounceFlag
			if debounce <= 0 {
				debounce = cfg.Watch.Debounce
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return wf.Watch(ctx, domain.WatchArgs{
				ProcessArgs: watchCmdFlags.args(args),
				Debounce:    debounce,
			})
		},
	}

	bindProcessFlags(cmd, &watchCmdFlags)
	cmd.Flags().DurationVar(&watchDebounceFlag, "debounce", 0, "wait this long after the last change before a run (default: configured value)")

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

// describeCmd represents the describe command.
var describeCmd = newDescribeCmd()

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "describe <rule>",
		Aliases: []string{"view"},
		Short:   "Show a rule with its before and after samples",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := newWorkflow(cmd, cfg, nil, false, true)
			if err != nil {
				return err
			}

			return wf.Describe(args[0])
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rules",
		Aliases: []string{"list"},
		Short:   "List the available rules",
		Args:    cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			wf, err := newWorkflow(cmd, cfg, nil, false, false)
			if err != nil {
				return err
			}

			return wf.Rules()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the type packages that would be installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := c.app.Plan(runOptions(cmd))
			if err != nil {
				return err
			}
			return c.app.List(plan, cmd.OutOrStdout())
		},
	}
}

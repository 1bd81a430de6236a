package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/grails/internal/engine/plugin"
)

func (c *CLI) newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the tasks available for this project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			bootstrap, err := c.app.Bootstrap(cwd)
			if err != nil {
				return err
			}
			for _, name := range bootstrap.Tasks().Names() {
				cmd.Println(name)
			}
			cmd.Println()
			cmd.Printf("Any name starting with %q runs the matching launcher command.\n", plugin.DynamicTaskPrefix)
			return nil
		},
	}
}

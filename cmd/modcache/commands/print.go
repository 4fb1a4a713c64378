package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <file>",
		Short: "Print a module's references followed by its content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.app.Load(args[0])
			if err != nil {
				return err
			}
			if err := s.Module.Print(cmd.OutOrStdout()); err != nil {
				return zerr.Wrap(err, "failed to print module")
			}
			return nil
		},
	}
}

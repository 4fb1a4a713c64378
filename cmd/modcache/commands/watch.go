package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/modcache/internal/app"
	"go.trai.ch/modcache/internal/ui/style"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Watch a module and report whenever one of its dependencies changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			return c.app.Watch(cmd.Context(), args[0], func(r app.Report) {
				if !r.Changed {
					return
				}
				writeReport(w, style.Tilde, string(style.Iris), r)
			})
		},
	}
}

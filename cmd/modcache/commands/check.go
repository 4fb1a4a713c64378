package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/modcache/internal/app"
	"go.trai.ch/modcache/internal/ui/output"
	"go.trai.ch/modcache/internal/ui/style"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Resolve a module's dependencies once and report the latest change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.app.Check(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			writeReport(cmd.OutOrStdout(), style.Check, string(style.Green), report)
			return nil
		},
	}
}

// writeReport prints a one-line summary of a refresh pass.
func writeReport(w io.Writer, icon, color string, r app.Report) {
	out := output.New(w)

	latest := "no dependencies found"
	if !r.Latest.IsZero() {
		latest = "latest change " + r.Latest.UTC().Format(time.RFC3339)
	}

	line := fmt.Sprintf("%s %s: %s, %d render node(s)", icon, r.Path, latest, len(r.Root.Children))
	_, _ = fmt.Fprintln(w, output.Colorize(out, line, color))
}

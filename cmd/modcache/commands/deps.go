package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/modcache/internal/app"
	"go.trai.ch/modcache/internal/ui/output"
	"go.trai.ch/modcache/internal/ui/style"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps <file>",
		Short: "Print the dependency tree of a module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := c.app.Dependencies(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, args[0])
			writeTree(w, tree, "")
			return nil
		},
	}
}

func writeTree(w io.Writer, deps []app.Dependency, prefix string) {
	out := output.New(w)

	for i, dep := range deps {
		connector, indent := style.Branch, style.Pipe
		if i == len(deps)-1 {
			connector, indent = style.Last, style.Blank
		}

		label := dep.Kind.String() + " " + dep.Name
		switch {
		case !dep.Found:
			label = output.Colorize(out, label+" (not found)", string(style.Red))
		case dep.Version > 0:
			label += output.Colorize(out, fmt.Sprintf(" (v%d)", dep.Version), string(style.Slate))
		}

		_, _ = fmt.Fprintln(w, prefix+connector+label)
		writeTree(w, dep.Children, prefix+indent)
	}
}

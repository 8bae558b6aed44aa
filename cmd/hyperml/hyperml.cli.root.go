package main

import (
	"io"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree bound to the given streams.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           CmdNameRoot,
		Short:         HelpRootShort,
		Long:          HelpRootLong,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newRenderCmd(), newVersionCmd())
	return root
}

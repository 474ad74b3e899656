package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Execute is the main entry point for the loopscroll command line.
func Execute() {
	root := newRoot()
	if err := root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Return a new root command.
func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "loopscroll",
		Short: "Infinitely looping scroll lists",
		Long: `Scroll a small set of items forever, wrapping items that leave the
viewport around to the opposite edge of the content.

Use the simulate command to script drags headlessly, or the demo command to
drag a looping carousel in the terminal.`,
		SilenceUsage: true,
	}
	root.AddCommand(newSimulate())
	root.AddCommand(newDemo())

	return root
}

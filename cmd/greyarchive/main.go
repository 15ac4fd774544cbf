// greyarchive runs the Grey Archive, a six-room escape room that rewards
// saying less.
//
//	greyarchive                 play in this terminal
//	greyarchive serve           let visitors in over ssh
//	greyarchive history         list filed runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "greyarchive",
		Short:         "Walk the Grey Archive",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.toml (default $GREYARCHIVE_CONFIG or ~/.config/greyarchive/config.toml)")

	root.AddCommand(
		newPlayCommand(&configPath),
		newServeCommand(&configPath),
		newHistoryCommand(&configPath),
	)
	return root
}

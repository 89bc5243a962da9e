// Package cli defines the cobra commands of crudgen.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/crudgen/internal/wire"
)

var globalOpts wire.Options

// AddGlobalFlags registers the flags shared by every command and hands
// them to the service wiring before a command runs.
func AddGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringVar(&globalOpts.ConfigFile, "config", "", "Config file (default ./crudgen.yaml)")
	root.PersistentFlags().StringVar(&globalOpts.OutputRoot, "output-root", "", "Project directory generated paths resolve against (default cwd)")
	root.PersistentFlags().BoolVarP(&globalOpts.Verbose, "verbose", "v", false, "Show info level logs on stderr")

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		wire.Configure(globalOpts)
	}
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		wire.Sync()
	}
}

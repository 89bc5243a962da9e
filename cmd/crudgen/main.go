package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/crudgen/internal/cli"
	"github.com/example/crudgen/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "crudgen",
		Short:   "crudgen - admin CRUD scaffolder",
		Version: version.String(),
		Long: `crudgen generates admin controllers, translation files and client pages
from a registered model and the live schema of its table.`,
		SilenceErrors: true,
	}

	cli.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(cli.MakeCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

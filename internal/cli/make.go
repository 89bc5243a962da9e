package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/crudgen/internal/ports/primary"
	"github.com/example/crudgen/internal/wire"
)

// MakeCmd returns the make command that scaffolds an admin resource.
func MakeCmd() *cobra.Command {
	var (
		title     string
		name      string
		stub      string
		namespace string
		output    bool
	)

	cmd := &cobra.Command{
		Use:   "make [model]",
		Short: "Generate an admin controller, translations and client pages for a model",
		Long: `Introspect the model's table and generate:
  - An admin controller with grid, show and form field blocks
  - One translation file per locale directory
  - Index, show, create and edit client pages

Existing files are never overwritten. The model must be registered in
crudgen.yaml. Without a model, --name renders a blank controller.

Examples:
  crudgen make 'App\Models\User'
  crudgen make 'App\Models\User' --title Members --name MemberController
  crudgen make 'App\Models\User' -O          # print the field blocks only
  crudgen make --name DashboardController    # blank controller`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var model string
			if len(args) == 1 {
				model = args[0]
			}

			adapter, err := wire.GeneratorAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			return adapter.Make(cmd.Context(), primary.GenerateRequest{
				Model:     model,
				Title:     title,
				Name:      name,
				StubPath:  stub,
				Namespace: namespace,
				DryRun:    output,
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Resource title (default model short name)")
	cmd.Flags().StringVar(&name, "name", "", "Controller class name (default <Model>Controller)")
	cmd.Flags().StringVar(&stub, "stub", "", "Path to a custom controller stub file")
	cmd.Flags().StringVar(&namespace, "namespace", "", "Controller namespace (default admin.namespace)")
	cmd.Flags().BoolVarP(&output, "output", "O", false, "Print the generated field blocks without writing files")

	return cmd
}

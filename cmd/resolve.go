package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lcollet/schemapick/internal/adapters/prompt"
	"github.com/lcollet/schemapick/internal/application"
)

func newResolveCmd(app *app) *cobra.Command {
	var (
		workspace  string
		name       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the schema location for a workspace",
		Long:  "Resolve prints the schema that governs the workspace's pipeline files. Without --workspace it prints the static fallback. Resolution never fails: detection problems degrade to the fallback.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := resolveRequest(workspace, name)

			resolver := app.resolver(&prompt.Headless{Err: cmd.ErrOrStderr()})
			location := resolver.Resolve(cmd.Context(), req)
			resolver.Wait()

			if jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(map[string]any{
					"uri":          location.URI,
					"organization": location.Organization,
					"detected":     location.Detected(),
				})
			}

			if location.Detected() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (organization %s)\n", location.URI, location.Organization)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (fallback)\n", location.URI)
			return nil
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "workspace root directory")
	cmd.Flags().StringVar(&name, "name", "", "workspace name (defaults to the directory name)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the location as JSON")

	return cmd
}

func resolveRequest(workspace, name string) application.Request {
	if workspace == "" {
		return application.Request{}
	}
	if name == "" {
		name = filepath.Base(workspace)
	}
	return application.Request{WorkspaceName: name, WorkspaceRoot: workspace}
}

package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lcollet/schemapick/internal/adapters/lsp"
	"github.com/lcollet/schemapick/internal/adapters/prompt"
	"github.com/lcollet/schemapick/internal/domain"
)

func newServeCmd(app *app) *cobra.Command {
	var (
		workspace string
		name      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Resolve a workspace and stream schema associations to stdout",
		Long:  "Serve resolves the workspace, publishes the schema association as a framed JSON-RPC notification on stdout, and republishes whenever an asynchronous state change calls for re-resolution. Runs until interrupted.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			req := resolveRequest(workspace, name)
			resolver := app.resolver(&prompt.Headless{Err: cmd.ErrOrStderr()})
			publisher := lsp.New(cmd.OutOrStdout())

			publish := func(ctx context.Context) error {
				location := resolver.Resolve(ctx, req)
				associations := domain.NewSchemaAssociations(location)
				return publisher.Publish(ctx, req.WorkspaceName, associations)
			}

			app.notifier.Subscribe(req.WorkspaceName, func(ws string) {
				if err := publish(ctx); err != nil {
					app.logger.Warn("republish failed", "workspace", ws, "err", err)
				}
			})
			defer app.notifier.Unsubscribe(req.WorkspaceName)

			if err := publish(ctx); err != nil {
				return err
			}

			<-ctx.Done()
			resolver.Wait()
			return nil
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "workspace root directory")
	cmd.Flags().StringVar(&name, "name", "", "workspace name (defaults to the directory name)")
	_ = cmd.MarkFlagRequired("workspace")

	return cmd
}

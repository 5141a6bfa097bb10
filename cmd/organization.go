package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lcollet/schemapick/internal/adapters/prompt"
	"github.com/lcollet/schemapick/internal/domain"
)

func newOrganizationCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "organization",
		Aliases: []string{"org"},
		Short:   "Inspect and select organizations",
	}

	cmd.AddCommand(
		newOrganizationListCmd(app),
		newOrganizationSelectCmd(app),
		newOrganizationShowCmd(app),
	)

	return cmd
}

func newOrganizationListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List organizations accessible to the configured sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sessions, err := app.sessions.Sessions(cmd.Context())
			if err != nil {
				return fmt.Errorf("list sessions: %w", err)
			}
			if len(sessions) == 0 {
				return domain.ErrNotSignedIn
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ORGANIZATION\tSESSION")
			for _, session := range sessions {
				organizations, err := app.client.ListOrganizations(cmd.Context(), session)
				if err != nil {
					app.logger.Warn("listing organizations failed",
						"session", session.Label(), "err", err)
					continue
				}
				for _, org := range organizations {
					fmt.Fprintf(w, "%s\t%s\n", org.Name, session.Label())
				}
			}
			return w.Flush()
		},
	}
}

func newOrganizationSelectCmd(app *app) *cobra.Command {
	var (
		workspace string
		name      string
	)

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Interactively pick the organization governing a workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolver := app.resolver(prompt.NewTUI())
			err := resolver.SelectOrganization(cmd.Context(), resolveRequest(workspace, name))
			if errors.Is(err, domain.ErrPromptDeclined) {
				fmt.Fprintln(cmd.OutOrStdout(), "selection cancelled")
				return nil
			}
			if err != nil {
				return err
			}

			choice, err := app.choices.Get(cmd.Context(), resolveRequest(workspace, name).WorkspaceName)
			if err != nil {
				return fmt.Errorf("read saved choice: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "selected %s for %s\n", choice.Organization, choice.Workspace)
			return nil
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "workspace root directory")
	cmd.Flags().StringVar(&name, "name", "", "workspace name (defaults to the directory name)")
	_ = cmd.MarkFlagRequired("workspace")

	return cmd
}

func newOrganizationShowCmd(app *app) *cobra.Command {
	var (
		workspace string
		name      string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show saved organization choices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" && workspace != "" {
				name = resolveRequest(workspace, "").WorkspaceName
			}
			if name != "" {
				choice, err := app.choices.Get(cmd.Context(), name)
				if errors.Is(err, domain.ErrChoiceNotFound) {
					fmt.Fprintf(cmd.OutOrStdout(), "no organization saved for %s\n", name)
					return nil
				}
				if err != nil {
					return fmt.Errorf("read saved choice: %w", err)
				}
				printChoice(cmd, choice)
				return nil
			}

			choices, err := app.choices.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list saved choices: %w", err)
			}
			for _, choice := range choices {
				printChoice(cmd, choice)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "workspace root directory")
	cmd.Flags().StringVar(&name, "name", "", "show only this workspace's choice")

	return cmd
}

func printChoice(cmd *cobra.Command, choice domain.OrganizationChoice) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (tenant %s, chosen %s)\n",
		choice.Workspace, choice.Organization, choice.TenantID,
		choice.ChosenAt.Format("2006-01-02 15:04"))
}

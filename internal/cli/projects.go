package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/service/project"
)

func projectsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project", "p"},
		Short:   "Browse and manage projects",
	}
	cmd.AddCommand(
		projectsListCmd(e),
		projectsSearchCmd(e),
		projectsShowCmd(e),
		projectsCreateCmd(e),
		projectsUpdateCmd(e),
		projectsDeleteCmd(e),
		projectsInviteCmd(e),
		projectsAcceptCmd(e),
	)
	return cmd
}

func (e *env) projectList(w io.Writer, list []domain.Project) error {
	return e.render(w, list, func(w io.Writer) error {
		rows := make([][]string, 0, len(list))
		for _, p := range list {
			rows = append(rows, []string{id(p.ID), p.Name, p.Category, strings.Join(p.Tags, ",")})
		}
		return writeTable(w, []string{"ID", "NAME", "CATEGORY", "TAGS"}, rows)
	})
}

func projectsListCmd(e *env) *cobra.Command {
	var filters domain.ProjectFilters
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := e.client.Projects.FetchProjects(cmd.Context(), filters)
			if err != nil {
				return err
			}
			return e.projectList(cmd.OutOrStdout(), list)
		},
	}
	cmd.Flags().StringVarP(&filters.Category, "category", "c", domain.FilterAll, "filter by category")
	cmd.Flags().StringVarP(&filters.Tag, "tag", "t", domain.FilterAll, "filter by tag")
	return cmd
}

func projectsSearchCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>...",
		Short: "Search projects by keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := e.client.Projects.SearchProjects(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return e.projectList(cmd.OutOrStdout(), list)
		},
	}
}

func projectsShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show a project with its issues and chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			v, err := e.client.Workspace.Open(cmd.Context(), pid)
			if err != nil {
				return err
			}
			return e.render(cmd.OutOrStdout(), v, func(w io.Writer) error {
				p := v.Project
				fmt.Fprintf(w, "#%d %s [%s]\n", p.ID, p.Name, p.Category)
				if p.Description != "" {
					fmt.Fprintln(w, p.Description)
				}
				if len(p.Tags) > 0 {
					fmt.Fprintf(w, "tags: %s\n", strings.Join(p.Tags, ", "))
				}
				if p.Owner != nil {
					fmt.Fprintf(w, "owner: %s\n", p.Owner.DisplayName())
				}
				team := make([]string, 0, len(p.Team))
				for _, u := range p.Team {
					team = append(team, u.DisplayName())
				}
				if len(team) > 0 {
					fmt.Fprintf(w, "team: %s\n", strings.Join(team, ", "))
				}
				fmt.Fprintln(w)
				if err := writeBoard(w, v.Issues); err != nil {
					return err
				}
				fmt.Fprintf(w, "\nchat: %d messages\n", len(v.Messages))
				return nil
			})
		},
	}
}

func projectFlags(cmd *cobra.Command, in *project.ProjectInput) {
	cmd.Flags().StringVarP(&in.Name, "name", "n", "", "project name")
	cmd.Flags().StringVarP(&in.Description, "description", "d", "", "description")
	cmd.Flags().StringVarP(&in.Category, "category", "c", "", "category")
	cmd.Flags().StringSliceVarP(&in.Tags, "tags", "t", nil, "comma-separated tags")
}

func projectsCreateCmd(e *env) *cobra.Command {
	var in project.ProjectInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.client.Projects.CreateProject(cmd.Context(), in)
			if err != nil {
				return err
			}
			return e.projectList(cmd.OutOrStdout(), []domain.Project{*p})
		},
	}
	projectFlags(cmd, &in)
	return cmd
}

func projectsUpdateCmd(e *env) *cobra.Command {
	var in project.ProjectInput
	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Replace a project's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			p, err := e.client.Projects.UpdateProject(cmd.Context(), pid, in)
			if err != nil {
				return err
			}
			return e.projectList(cmd.OutOrStdout(), []domain.Project{*p})
		},
	}
	projectFlags(cmd, &in)
	return cmd
}

func projectsDeleteCmd(e *env) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			if !yes {
				ok, err := confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), fmt.Sprintf("Delete project %d?", pid))
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}
			return e.client.Projects.DeleteProject(cmd.Context(), pid)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func projectsInviteCmd(e *env) *cobra.Command {
	var in project.InviteInput
	cmd := &cobra.Command{
		Use:   "invite <project-id> <email>",
		Short: "Invite someone to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			in.ProjectID, in.Email = pid, args[1]
			_, err = e.client.Projects.InviteToProject(cmd.Context(), in)
			return err
		},
	}
	return cmd
}

func projectsAcceptCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "accept <token>",
		Short: "Accept a project invitation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := e.client.Projects.AcceptInvitation(cmd.Context(), args[0])
			return err
		},
	}
}

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/service/issue"
)

func issuesCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "issues",
		Aliases: []string{"issue", "i"},
		Short:   "Track issues of a project",
	}
	cmd.AddCommand(
		issuesListCmd(e),
		issuesShowCmd(e),
		issuesCreateCmd(e),
		issuesStatusCmd(e),
		issuesAssignCmd(e),
		issuesDeleteCmd(e),
	)
	return cmd
}

func assignee(is domain.Issue) string {
	if is.Assignee == nil {
		return ""
	}
	return is.Assignee.DisplayName()
}

// writeBoard prints issues grouped into status columns.
func writeBoard(w io.Writer, issues []domain.Issue) error {
	board := domain.GroupByStatus(issues)
	for _, status := range domain.IssueStatuses {
		col := board[status]
		fmt.Fprintf(w, "%s (%d)\n", status, len(col))
		for _, is := range col {
			line := fmt.Sprintf("  #%d %s", is.ID, is.Title)
			if a := assignee(is); a != "" {
				line += " @" + a
			}
			fmt.Fprintln(w, line)
		}
	}
	return nil
}

func (e *env) issueList(w io.Writer, list []domain.Issue) error {
	return e.render(w, list, func(w io.Writer) error {
		rows := make([][]string, 0, len(list))
		for _, is := range list {
			rows = append(rows, []string{id(is.ID), is.Title, is.Status.String(), is.Priority, is.DueDate, assignee(is)})
		}
		return writeTable(w, []string{"ID", "TITLE", "STATUS", "PRIORITY", "DUE", "ASSIGNEE"}, rows)
	})
}

func issuesListCmd(e *env) *cobra.Command {
	var board bool
	cmd := &cobra.Command{
		Use:   "list <project-id>",
		Short: "List the issues of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			list, err := e.client.Issues.FetchIssues(cmd.Context(), pid)
			if err != nil {
				return err
			}
			if board {
				grouped := e.client.Issues.Board()
				return e.render(cmd.OutOrStdout(), grouped, func(w io.Writer) error {
					return writeBoard(w, list)
				})
			}
			return e.issueList(cmd.OutOrStdout(), list)
		},
	}
	cmd.Flags().BoolVarP(&board, "board", "b", false, "group by status")
	return cmd
}

func issuesShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <issue-id>",
		Short: "Show an issue and its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iid, err := parseID(args[0], "issue id")
			if err != nil {
				return err
			}
			is, err := e.client.Issues.FetchIssueByID(cmd.Context(), iid)
			if err != nil {
				return err
			}
			comments, err := e.client.Comments.FetchComments(cmd.Context(), iid)
			if err != nil {
				return err
			}

			v := struct {
				Issue    *domain.Issue    `json:"issue" yaml:"issue"`
				Comments []domain.Comment `json:"comments" yaml:"comments"`
			}{is, comments}
			return e.render(cmd.OutOrStdout(), v, func(w io.Writer) error {
				fmt.Fprintf(w, "#%d %s [%s]\n", is.ID, is.Title, is.Status)
				if is.Description != "" {
					fmt.Fprintln(w, is.Description)
				}
				if a := assignee(*is); a != "" {
					fmt.Fprintf(w, "assignee: %s\n", a)
				}
				if is.DueDate != "" {
					fmt.Fprintf(w, "due: %s\n", is.DueDate)
				}
				fmt.Fprintln(w)
				return writeComments(w, comments)
			})
		},
	}
}

func issuesCreateCmd(e *env) *cobra.Command {
	var (
		in     issue.CreateIssueInput
		status string
	)
	cmd := &cobra.Command{
		Use:   "create <project-id>",
		Short: "Create an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			in.ProjectID = pid
			in.Status = domain.IssueStatus(status)
			is, err := e.client.Issues.CreateIssue(cmd.Context(), in)
			if err != nil {
				return err
			}
			return e.issueList(cmd.OutOrStdout(), []domain.Issue{*is})
		},
	}
	cmd.Flags().StringVarP(&in.Title, "title", "t", "", "issue title")
	cmd.Flags().StringVarP(&in.Description, "description", "d", "", "description")
	cmd.Flags().StringVarP(&status, "status", "s", "", "pending, in-progress or done (default pending)")
	cmd.Flags().StringVar(&in.Priority, "priority", "", "low, medium or high")
	cmd.Flags().StringVar(&in.DueDate, "due", "", "due date (YYYY-MM-DD)")
	return cmd
}

func issuesStatusCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "status <issue-id> <status>",
		Short: "Move an issue to another column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			iid, err := parseID(args[0], "issue id")
			if err != nil {
				return err
			}
			_, err = e.client.Issues.UpdateIssueStatus(cmd.Context(), iid, domain.IssueStatus(args[1]))
			return err
		},
	}
}

func issuesAssignCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <issue-id> <user-id>",
		Short: "Assign an issue to a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			iid, err := parseID(args[0], "issue id")
			if err != nil {
				return err
			}
			uid, err := parseID(args[1], "user id")
			if err != nil {
				return err
			}
			_, err = e.client.Issues.AssignIssue(cmd.Context(), iid, uid)
			return err
		},
	}
}

func issuesDeleteCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <issue-id>",
		Short: "Delete an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iid, err := parseID(args[0], "issue id")
			if err != nil {
				return err
			}
			return e.client.Issues.DeleteIssue(cmd.Context(), iid)
		},
	}
}

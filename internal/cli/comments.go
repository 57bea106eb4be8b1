package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/service/comment"
)

func commentsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "comments",
		Aliases: []string{"comment"},
		Short:   "Discuss an issue",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list <issue-id>",
		Short: "List the comments of an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iid, err := parseID(args[0], "issue id")
			if err != nil {
				return err
			}
			list, err := e.client.Comments.FetchComments(cmd.Context(), iid)
			if err != nil {
				return err
			}
			return e.render(cmd.OutOrStdout(), list, func(w io.Writer) error {
				return writeComments(w, list)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <issue-id> <text>...",
		Short: "Comment on an issue",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			iid, err := parseID(args[0], "issue id")
			if err != nil {
				return err
			}
			_, err = e.client.Comments.CreateComment(cmd.Context(), comment.CreateCommentInput{
				IssueID: iid,
				Content: strings.Join(args[1:], " "),
			})
			if err != nil {
				return err
			}
			th := e.client.Comments.Thread(iid)
			return e.render(cmd.OutOrStdout(), th.Comments, func(w io.Writer) error {
				return writeComments(w, th.Comments)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <issue-id> <comment-id>",
		Short: "Delete a comment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			iid, err := parseID(args[0], "issue id")
			if err != nil {
				return err
			}
			cid, err := parseID(args[1], "comment id")
			if err != nil {
				return err
			}
			return e.client.Comments.DeleteComment(cmd.Context(), iid, cid)
		},
	})
	return cmd
}

func writeComments(w io.Writer, list []domain.Comment) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "no comments")
		return err
	}
	for _, c := range list {
		author := c.Author()
		if author == "" {
			author = "unknown"
		}
		if _, err := fmt.Fprintf(w, "[%d] %s: %s\n", c.ID, author, c.Content); err != nil {
			return err
		}
	}
	return nil
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/service/chat"
)

func chatCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to a project's team",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "history <project-id>",
		Short: "Show a project's chat history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			list, err := e.client.Chat.FetchMessages(cmd.Context(), pid)
			if err != nil {
				return err
			}
			return e.render(cmd.OutOrStdout(), list, func(w io.Writer) error {
				return writeMessages(w, list)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "send <project-id> <text>...",
		Short: "Send a chat message",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parseID(args[0], "project id")
			if err != nil {
				return err
			}
			user, err := e.client.Session.GetCurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			msg, err := e.client.Chat.SendMessage(cmd.Context(), chat.SendInput{
				SenderID:  user.Identity(),
				ProjectID: pid,
				Content:   strings.Join(args[1:], " "),
			})
			if err != nil {
				return err
			}
			return e.render(cmd.OutOrStdout(), msg, func(w io.Writer) error {
				return writeMessages(w, []domain.Message{*msg})
			})
		},
	})
	return cmd
}

func writeMessages(w io.Writer, list []domain.Message) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "no messages")
		return err
	}
	for _, m := range list {
		from := m.FromName()
		if from == "" {
			from = fmt.Sprintf("user %d", m.From())
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", from, m.Content); err != nil {
			return err
		}
	}
	return nil
}

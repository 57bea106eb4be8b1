package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/service/session"
)

func loginCmd(e *env) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "Password", password)
			if err != nil {
				return err
			}
			return e.client.Session.Login(cmd.Context(), session.LoginInput{Email: email, Password: pw})
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func registerCmd(e *env) *cobra.Command {
	var in session.RegisterInput
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "Password", in.Password)
			if err != nil {
				return err
			}
			in.Password = pw
			return e.client.Session.Register(cmd.Context(), in)
		},
	}
	cmd.Flags().StringVarP(&in.FullName, "name", "n", "", "full name")
	cmd.Flags().StringVarP(&in.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&in.Password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func logoutCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.client.Session.Logout(cmd.Context())
		},
	}
}

type whoami struct {
	User        *domain.User         `json:"user" yaml:"user"`
	ProjectSize int                  `json:"projectSize" yaml:"projectSize"`
	OAuth       domain.OAuthProvider `json:"oauthProvider,omitempty" yaml:"oauthProvider,omitempty"`
	Projects    int                  `json:"projects" yaml:"projects"`
}

func whoamiCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.client.Session.RequireToken(cmd.Context()); err != nil {
				if session.IsNoToken(err) {
					return fmt.Errorf("%w: run pmctl login first", err)
				}
				return err
			}
			if err := e.client.Start(cmd.Context()); err != nil {
				return err
			}

			st := e.client.Session.State()
			v := whoami{
				User:        st.User,
				ProjectSize: st.ProjectSize,
				OAuth:       st.OAuthProvider,
				Projects:    len(e.client.Projects.State().Projects),
			}
			return e.render(cmd.OutOrStdout(), v, func(w io.Writer) error {
				if v.User == nil {
					_, err := fmt.Fprintln(w, "signed in")
					return err
				}
				_, err := fmt.Fprintf(w, "%s <%s>\nprojects: %d\n", v.User.DisplayName(), v.User.Email, v.Projects)
				return err
			})
		},
	}
}

func oauthCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oauth",
		Short: "Sign in through an external provider",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "url <provider>",
		Short: "Print the provider's sign-in URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := e.client.Session.InitiateOAuth(cmd.Context(), args[0])
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "complete <redirect-url>",
		Short: "Finish sign-in from the URL the provider redirected to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := e.client.Session.ProcessOAuthRedirect(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("redirect carried no token")
			}
			return nil
		},
	})
	return cmd
}

func passwordCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Recover a forgotten password",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "forgot <email>",
		Short: "Send a reset link and OTP to the email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.client.Session.ForgotPassword(cmd.Context(), strings.TrimSpace(args[0]))
		},
	})

	var in session.ResetPasswordInput
	reset := &cobra.Command{
		Use:   "reset",
		Short: "Set a new password with the token and OTP from the email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "New password", in.NewPassword)
			if err != nil {
				return err
			}
			in.NewPassword = pw
			return e.client.Session.ResetPassword(cmd.Context(), in)
		},
	}
	reset.Flags().StringVar(&in.Token, "token", "", "reset token from the email link")
	reset.Flags().StringVar(&in.OTP, "otp", "", "4-digit code from the email")
	reset.Flags().StringVar(&in.NewPassword, "password", "", "new password (prompted when omitted)")
	reset.Flags().StringVar(&in.ConfirmPassword, "confirm", "", "repeat the new password")
	cmd.AddCommand(reset)
	return cmd
}

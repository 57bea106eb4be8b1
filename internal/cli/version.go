package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Achamanp/ProjectManagentApp/internal/app"
)

func versionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"offline": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			v := map[string]string{
				"version": app.Version,
				"commit":  app.Commit,
				"built":   app.BuildTime,
			}
			return e.render(cmd.OutOrStdout(), v, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "pmctl %s\n", app.BuildVersion())
				return err
			})
		},
	}
}

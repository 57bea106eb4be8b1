// Package cli implements the pmctl command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/Achamanp/ProjectManagentApp/internal/adapter/tokenstore"
	"github.com/Achamanp/ProjectManagentApp/internal/app"
	"github.com/Achamanp/ProjectManagentApp/internal/config"
	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/pkg/ctxutil"
)

// OutputFormat is the value of --output.
type OutputFormat string

// Output formats accepted by --output.
const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

var _ pflag.Value = (*OutputFormat)(nil)

func (f *OutputFormat) String() string { return string(*f) }

func (f *OutputFormat) Set(s string) error {
	switch v := OutputFormat(s); v {
	case OutputText, OutputJSON, OutputYAML:
		*f = v
		return nil
	}
	return fmt.Errorf("unknown output format %q", s)
}

func (f *OutputFormat) Type() string { return "format" }

// Options are the process-level inputs of the command tree.
type Options struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	// Tokens and Clock override the configured backends.
	Tokens tokenstore.Store
	Clock  clockwork.Clock
}

type env struct {
	opts       Options
	configPath string
	output     OutputFormat
	client     *app.Client
}

// NewRootCmd builds the pmctl command tree.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	e := &env{opts: opts, output: OutputText}

	root := &cobra.Command{
		Use:   "pmctl",
		Short: "pmctl - project management client",
		Long: `pmctl talks to the project-management API: sign in, browse projects,
track issues, chat with your team and manage your plan.`,
		Version:           app.BuildVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: e.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return e.teardown()
		},
	}
	root.SetIn(opts.In)
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	root.PersistentFlags().StringVar(&e.configPath, "config", os.Getenv("CONFIG_PATH"), "path to config.yaml")
	root.PersistentFlags().VarP(&e.output, "output", "o", "output format: text, json or yaml")

	root.AddCommand(
		loginCmd(e),
		registerCmd(e),
		logoutCmd(e),
		whoamiCmd(e),
		oauthCmd(e),
		passwordCmd(e),
		projectsCmd(e),
		issuesCmd(e),
		commentsCmd(e),
		chatCmd(e),
		planCmd(e),
		versionCmd(e),
	)
	return root
}

// Execute runs the command tree and prints a failure to stderr.
func Execute(cmd *cobra.Command) error {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", describe(err))
		return err
	}
	return nil
}

func describe(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.First()
	}
	return domain.Describe(err, domain.StatusCopy{})
}

// setup loads configuration and wires the client. Help, completion and
// commands annotated "offline" skip it.
func (e *env) setup(cmd *cobra.Command, args []string) error {
	if cmd.Annotations["offline"] == "true" || cmd.Name() == "help" ||
		(cmd.HasParent() && cmd.Parent().Name() == "completion") {
		return nil
	}

	cmd.SetContext(ctxutil.WithOperation(cmd.Context(), cmd.CommandPath()))

	cfg, err := config.LoadFrom(e.configPath)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	client, err := app.New(cmd.Context(), cfg, logger, app.Options{
		Out:    e.opts.Out,
		Err:    e.opts.Err,
		Plain:  !isTerminal(e.opts.Err),
		Clock:  e.opts.Clock,
		Tokens: e.opts.Tokens,
	})
	if err != nil {
		return err
	}
	e.client = client

	if _, err := client.Session.Rehydrate(cmd.Context()); err != nil {
		return err
	}
	return nil
}

func (e *env) teardown() error {
	if e.client == nil {
		return nil
	}
	c := e.client
	e.client = nil
	return c.Close()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Command pmctl is a terminal client for the project-management API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Achamanp/ProjectManagentApp/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(cli.Options{})
	root.SetContext(ctx)
	if err := cli.Execute(root); err != nil {
		stop()
		os.Exit(1)
	}
}

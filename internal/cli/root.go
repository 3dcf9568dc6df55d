package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "namekit",
		Short:        "AI domain name suggestions checked against a registry",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		serveCmd(&debug),
		migrateCmd(&debug),
		importCmd(&debug),
		generateCmd(&debug),
	)
	return cmd
}

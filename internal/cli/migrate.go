package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/namekit/pkg/logger"
)

func migrateCmd(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply registry schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, log, err := setup(*debug)
			if err != nil {
				return err
			}

			reg, err := openRegistry(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer reg.Close()

			if err := reg.Migrate(ctx); err != nil {
				return err
			}
			log.InfoContext(ctx, "registry migrated", logger.Component("cli"), logger.Event("migrated"))
			return nil
		},
	}
}

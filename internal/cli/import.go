package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/namekit/pkg/logger"
	"github.com/dmitrymomot/namekit/pkg/registry"
)

func importCmd(debug *bool) *cobra.Command {
	var migrate bool

	c := &cobra.Command{
		Use:   "import <file|->",
		Short: "Load registered domain names into the registry",
		Long:  "Reads one domain per line. Blank lines and # comments are skipped; CSV rows use the first column.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var src io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
			}

			names, err := registry.ReadList(src)
			if err != nil {
				return err
			}

			cfg, log, err := setup(*debug)
			if err != nil {
				return err
			}

			reg, err := openRegistry(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer reg.Close()

			if migrate {
				if err := reg.Migrate(ctx); err != nil {
					return err
				}
			}

			n, err := reg.Store.Import(ctx, names)
			if err != nil {
				return err
			}
			log.InfoContext(ctx, "registry import finished",
				logger.Component("cli"),
				logger.Count("read", len(names)),
				logger.Count("inserted", int(n)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d names\n", n, len(names))
			return nil
		},
	}

	c.Flags().BoolVar(&migrate, "migrate", false, "apply migrations before importing")
	return c
}

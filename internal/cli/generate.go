package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

type generateFlags struct {
	keywords    []string
	description string
	length      int
	style       string
	tlds        []string
}

func generateCmd(debug *bool) *cobra.Command {
	var f generateFlags

	c := &cobra.Command{
		Use:   "generate",
		Short: "Suggest domain names and print them as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			_, _, reg, svc, err := bootstrap(ctx, *debug)
			if err != nil {
				return err
			}
			defer reg.Close()

			resp, err := svc.GenerateRaw(ctx, f.request(cmd.Flags().Changed("length")))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}

	c.Flags().StringSliceVarP(&f.keywords, "keyword", "k", nil, "keyword, repeatable or comma separated")
	c.Flags().StringVarP(&f.description, "description", "d", "", "what the business does")
	c.Flags().IntVarP(&f.length, "length", "l", 0, "approximate name length, excluding TLD")
	c.Flags().StringVarP(&f.style, "style", "s", "", "naming style: short, brandable, balanced, creative, funny or professional")
	c.Flags().StringSliceVarP(&f.tlds, "tld", "t", nil, "preferred TLD, repeatable")
	_ = c.MarkFlagRequired("keyword")
	_ = c.MarkFlagRequired("style")

	return c
}

// request shapes the flags like a decoded API body so the same validation
// applies. Unset optional flags are left out.
func (f generateFlags) request(lengthSet bool) map[string]any {
	raw := map[string]any{
		"keywords":    f.keywords,
		"domainStyle": f.style,
	}
	if lengthSet {
		raw["domainLength"] = f.length
	}
	if f.description != "" {
		raw["description"] = f.description
	}
	if len(f.tlds) > 0 {
		raw["tlds"] = f.tlds
	}
	return raw
}

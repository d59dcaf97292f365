package cli

import (
	"fmt"
	"text/tabwriter"

	"portfolio/internal/domain/category"

	"github.com/spf13/cobra"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories [images|videos]",
		Short: "Print the accepted categories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := []category.Kind{category.KindPhoto, category.KindVideo}
			if len(args) == 1 {
				k, err := parseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []category.Kind{k}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, k := range kinds {
				for _, o := range category.Options(k) {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", k, o.Value, o.Label)
				}
			}
			return tw.Flush()
		},
	}
}

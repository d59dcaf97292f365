package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"portfolio/internal/client"
	"portfolio/internal/domain/category"
	"portfolio/internal/domain/dto"
	"portfolio/internal/domain/mapper"

	"github.com/spf13/cobra"
)

var listResources = []string{
	client.ResourceImages, client.ResourceVideos,
	client.ResourcePersonal, client.ResourceSocial,
	client.ResourceSkills, client.ResourceExperience, client.ResourceProjects, client.ResourceAwards,
}

func newListCommand(a *app) *cobra.Command {
	var cat string

	cmd := &cobra.Command{
		Use:       "list <resource>",
		Short:     "List a resource; media as a table, everything else as JSON",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: listResources,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireClient(); err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			resource := args[0]

			switch resource {
			case client.ResourceImages, client.ResourceVideos:
				kind := category.Kind(resource)
				var c category.Category
				if cat != "" {
					parsed, err := category.Parse(kind, cat)
					if err != nil {
						return err
					}
					c = parsed
				}
				if kind == category.KindPhoto {
					images, err := a.client.Images(ctx, c)
					if err != nil {
						return err
					}
					return printMedia(out, mapper.ImagesToItems(images))
				}
				videos, err := a.client.Videos(ctx, c)
				if err != nil {
					return err
				}
				return printMedia(out, mapper.VideosToItems(videos))

			case client.ResourcePersonal, client.ResourceSocial:
				var item map[string]any
				if err := a.client.Get(ctx, resource, &item); err != nil {
					return err
				}
				return printJSON(out, item)

			default:
				items := []map[string]any{}
				if err := a.client.List(ctx, resource, "", &items); err != nil {
					return err
				}
				return printJSON(out, items)
			}
		},
	}
	cmd.Flags().StringVarP(&cat, "category", "c", "", "filter media by category")
	return cmd
}

func printMedia(w io.Writer, items []dto.MediaItem) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tTITLE\tFEATURED\tURL")
	for _, m := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n", m.ID, m.Category, m.Title, m.Featured, m.URL)
	}
	return tw.Flush()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"portfolio/internal/client"
	"portfolio/internal/infrastructure/seed"

	"github.com/spf13/cobra"
)

func newSeedCommand(a *app) *cobra.Command {
	var (
		file    string
		profile bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Push seed data to the API",
		Long: "Fills skills, experience, projects and awards from a YAML seed file (the built-in defaults\n" +
			"when --file is empty). Collections that already have records are left alone.\n" +
			"With --profile the personal info and social links are overwritten too.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireClient(); err != nil {
				return err
			}
			data, err := seed.Load(file)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if profile {
				if data.Personal != nil {
					if err := a.client.Update(ctx, client.ResourcePersonal, "", data.Personal, nil); err != nil {
						return fmt.Errorf("personal: %w", err)
					}
					fmt.Fprintln(out, "personal: updated")
				}
				if data.Social != nil {
					if err := a.client.Update(ctx, client.ResourceSocial, "", data.Social, nil); err != nil {
						return fmt.Errorf("social: %w", err)
					}
					fmt.Fprintln(out, "social: updated")
				}
			}

			steps := []func() (string, int, error){
				func() (string, int, error) { return pushCollection(ctx, a.client, client.ResourceSkills, data.Skills) },
				func() (string, int, error) { return pushCollection(ctx, a.client, client.ResourceExperience, data.Experience) },
				func() (string, int, error) { return pushCollection(ctx, a.client, client.ResourceProjects, data.Projects) },
				func() (string, int, error) { return pushCollection(ctx, a.client, client.ResourceAwards, data.Awards) },
			}
			for _, step := range steps {
				resource, n, err := step()
				if err != nil {
					return fmt.Errorf("%s: %w", resource, err)
				}
				if n == 0 {
					fmt.Fprintf(out, "%s: skipped\n", resource)
					continue
				}
				fmt.Fprintf(out, "%s: %d created\n", resource, n)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "seed YAML file (default: built-in data)")
	cmd.Flags().BoolVar(&profile, "profile", false, "overwrite personal info and social links")
	return cmd
}

// pushCollection creates items only when the remote collection is empty.
func pushCollection[T any](ctx context.Context, c *client.Client, resource string, items []T) (string, int, error) {
	existing, err := client.ListAs[json.RawMessage](ctx, c, resource, "")
	if err != nil {
		return resource, 0, err
	}
	if len(existing) > 0 || len(items) == 0 {
		return resource, 0, nil
	}
	for i := range items {
		if err := c.Create(ctx, resource, &items[i], nil); err != nil {
			return resource, i, err
		}
	}
	return resource, len(items), nil
}

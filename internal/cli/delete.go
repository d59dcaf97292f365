package cli

import (
	"errors"
	"fmt"

	"portfolio/internal/client"

	"github.com/spf13/cobra"
)

var deletableResources = []string{
	client.ResourceImages, client.ResourceVideos,
	client.ResourceSkills, client.ResourceExperience, client.ResourceProjects, client.ResourceAwards,
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <resource> ID...",
		Short: "Delete records by id; media files are removed too",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(2)(cmd, args); err != nil {
				return err
			}
			for _, r := range deletableResources {
				if args[0] == r {
					return nil
				}
			}
			return fmt.Errorf("cannot delete from %q", args[0])
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireClient(); err != nil {
				return err
			}
			resource := args[0]
			var errs []error
			for _, id := range args[1:] {
				if err := a.client.Delete(cmd.Context(), resource, id); err != nil {
					errs = append(errs, fmt.Errorf("%s %s: %s", resource, id, client.Message(err)))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %s\n", resource, id)
			}
			return errors.Join(errs...)
		},
	}
}

package cli

import (
	"fmt"
	"io"
	"strconv"

	"portfolio/internal/client"
	"portfolio/internal/domain/category"
	"portfolio/internal/uploadqueue"

	"github.com/spf13/cobra"
)

func newUploadCommand(a *app) *cobra.Command {
	var (
		cat         string
		title       string
		description string
		featured    bool
	)

	cmd := &cobra.Command{
		Use:   "upload <images|videos> FILE...",
		Short: "Upload files one at a time",
		Long: "Queues every FILE and uploads them sequentially, pausing --upload-delay between uploads.\n" +
			"A failed file does not stop the run.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireClient(); err != nil {
				return err
			}
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			if cat == "" {
				cat = string(category.Options(kind)[0].Value)
			}

			files := make([]client.FileSource, 0, len(args)-1)
			for _, path := range args[1:] {
				f, err := client.LocalFile(path)
				if err != nil {
					return err
				}
				files = append(files, f)
			}

			m, err := uploadqueue.New(a.client, uploadqueue.Config{
				Kind:     kind,
				Owner:    a.v.GetString(keyOwner),
				Throttle: uploadqueue.Throttle{Delay: a.v.GetDuration(keyUploadDelay)},
				Logger:   a.logger,
			})
			if err != nil {
				return err
			}
			tasks, err := m.Enqueue(files, cat)
			if err != nil {
				return err
			}

			edits := map[uploadqueue.Field]string{}
			if cmd.Flags().Changed("title") {
				edits[uploadqueue.FieldTitle] = title
			}
			if cmd.Flags().Changed("description") {
				edits[uploadqueue.FieldDescription] = description
			}
			if featured {
				edits[uploadqueue.FieldFeatured] = strconv.FormatBool(featured)
			}
			for _, t := range tasks {
				for field, value := range edits {
					if err := m.UpdateField(t.ID, field, value); err != nil {
						return err
					}
				}
			}

			out := cmd.OutOrStdout()
			m.OnChange(func(t uploadqueue.Task) { printTask(out, t) })

			summary, err := m.RunAll(cmd.Context())
			fmt.Fprintf(out, "%d uploaded, %d failed\n", summary.Succeeded, summary.Failed)
			if err != nil {
				return err
			}
			if summary.Failed > 0 {
				return fmt.Errorf("%d of %d uploads failed", summary.Failed, summary.Attempted)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cat, "category", "c", "", "category (default: first category of the kind)")
	f.StringVarP(&title, "title", "t", "", "title for every file (default: derived from the filename)")
	f.StringVarP(&description, "description", "d", "", "description for every file")
	f.BoolVar(&featured, "featured", false, "mark the uploads as featured")
	return cmd
}

func printTask(w io.Writer, t uploadqueue.Task) {
	switch t.Status {
	case uploadqueue.StatusUploading:
		fmt.Fprintf(w, "uploading %s\n", t.File.Name)
	case uploadqueue.StatusSuccess:
		fmt.Fprintf(w, "ok        %s -> %s\n", t.File.Name, t.MediaID)
	case uploadqueue.StatusError:
		fmt.Fprintf(w, "failed    %s: %s\n", t.File.Name, t.Error)
	}
}

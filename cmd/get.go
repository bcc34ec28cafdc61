package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	getDest    string
	getWorkers int
)

var getCmd = &cobra.Command{
	Use:   "get <id>...",
	Short: "Download files",
	Long: `Download one or more files to a local directory.

Regular files are downloaded as-is. Google Workspace files are exported
to their Office or image counterpart (Docs to .docx, Sheets to .xlsx,
Slides to .pptx, Drawings to .png). Multiple IDs download concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGetCommand,
}

func init() {
	getCmd.Flags().StringVarP(&getDest, "dest", "o", ".", "Destination directory")
	getCmd.Flags().IntVar(&getWorkers, "workers", 4, "Maximum concurrent downloads")
	rootCmd.AddCommand(getCmd)
}

func runGetCommand(cmd *cobra.Command, args []string) error {
	svc, _, err := newDrive(cmd.Context())
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(args))

	for _, arg := range args {
		id, err := resolveID(arg)
		if err != nil {
			return err
		}

		ids = append(ids, id)
	}

	group, ctx := errgroup.WithContext(cmd.Context())
	group.SetLimit(getWorkers)

	for _, id := range ids {
		group.Go(func() error {
			path, err := svc.Download(ctx, id, getDest)
			if err != nil {
				return fmt.Errorf("download %s: %w", id, err)
			}

			fmt.Printf("Downloaded %s\n", path)

			return nil
		})
	}

	return group.Wait()
}

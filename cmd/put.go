package main

import (
	"fmt"
	"mime"
	"path/filepath"

	"gdrivekit/internal/gdrive"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	putParent   string
	putMimeType string
	putWorkers  int
	putProgress bool
)

var putCmd = &cobra.Command{
	Use:   "put <path>...",
	Short: "Upload local files",
	Long: `Upload one or more local files into a folder.

The content type is guessed from the file extension unless --type is set.
Multiple files upload concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPutCommand,
}

func init() {
	putCmd.Flags().StringVar(&putParent, "parent", "", "Destination folder ID or URL (default: configured root)")
	putCmd.Flags().StringVar(&putMimeType, "type", "", "Content type for all uploads (default: guessed per file)")
	putCmd.Flags().IntVar(&putWorkers, "workers", 4, "Maximum concurrent uploads")
	putCmd.Flags().BoolVar(&putProgress, "progress", false, "Report upload progress")
	rootCmd.AddCommand(putCmd)
}

func runPutCommand(cmd *cobra.Command, args []string) error {
	svc, cfg, err := newDrive(cmd.Context())
	if err != nil {
		return err
	}

	parentID := cfg.RootFolderID
	if putParent != "" {
		if parentID, err = resolveID(putParent); err != nil {
			return err
		}
	}

	group, ctx := errgroup.WithContext(cmd.Context())
	group.SetLimit(putWorkers)

	for _, path := range args {
		group.Go(func() error {
			contentType := putMimeType
			if contentType == "" {
				contentType = guessContentType(path)
			}

			var progress gdrive.ProgressFunc
			if putProgress {
				progress = func(current, total int64) {
					fmt.Printf("%s: %d/%d bytes\n", filepath.Base(path), current, total)
				}
			}

			id, err := svc.UploadFile(ctx, path, contentType, parentID, progress)
			if err != nil {
				return fmt.Errorf("upload %s: %w", path, err)
			}

			fmt.Printf("Uploaded %s (%s)\n", filepath.Base(path), id)

			return nil
		})
	}

	return group.Wait()
}

func guessContentType(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}

	return "application/octet-stream"
}

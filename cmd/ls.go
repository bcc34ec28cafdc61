package main

import (
	"fmt"
	"time"

	"gdrivekit/internal/gdrive"

	"github.com/spf13/cobra"
)

var (
	lsSince       string
	lsPageSize    int64
	lsFoldersOnly bool
)

var lsCmd = &cobra.Command{
	Use:   "ls [folder-id]",
	Short: "List items in a folder",
	Long: `List the non-trashed items directly under a folder.

Without an argument the configured root folder is listed. The argument may
be a folder ID or a Drive URL.

Examples:
  gdrivekit ls
  gdrivekit ls 1aBcD_folder_id --since "last week"
  gdrivekit ls --folders`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLsCommand,
}

func init() {
	lsCmd.Flags().StringVar(&lsSince, "since", "", "Only items modified after this date (ISO 8601, 7d, natural language)")
	lsCmd.Flags().Int64Var(&lsPageSize, "page-size", 0, "Results per page (default from config)")
	lsCmd.Flags().BoolVar(&lsFoldersOnly, "folders", false, "List folders only")
	rootCmd.AddCommand(lsCmd)
}

func runLsCommand(cmd *cobra.Command, args []string) error {
	svc, cfg, err := newDrive(cmd.Context())
	if err != nil {
		return err
	}

	parentID := cfg.RootFolderID
	if len(args) == 1 {
		if parentID, err = resolveID(args[0]); err != nil {
			return err
		}
	}

	pageSize := cfg.PageSize
	if lsPageSize > 0 {
		pageSize = lsPageSize
	}

	var since time.Time
	if lsSince != "" {
		if since, err = parseDateTime(lsSince); err != nil {
			return err
		}
	}

	var items []gdrive.Item
	if lsFoldersOnly {
		items, err = svc.ListFoldersIn(cmd.Context(), parentID, pageSize)
	} else {
		items, err = svc.ListItemsIn(cmd.Context(), parentID, pageSize, since)
	}

	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("No items found.")

		return nil
	}

	for _, item := range items {
		marker := " "
		if item.IsFolder() {
			marker = "/"
		}

		fmt.Printf("%s%s  %s  (%s)\n", item.Name, marker, item.ID, item.MimeType)
	}

	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	mkdirParent    string
	mkdirIfMissing bool
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <name>",
	Short: "Create a folder",
	Long: `Create a folder under the configured root, or under --parent.

With --if-missing an existing folder of the same name under the same parent
is reused instead of creating a duplicate.`,
	Args: cobra.ExactArgs(1),
	RunE: runMkdirCommand,
}

func init() {
	mkdirCmd.Flags().StringVar(&mkdirParent, "parent", "", "Parent folder ID or URL (default: configured root)")
	mkdirCmd.Flags().BoolVar(&mkdirIfMissing, "if-missing", false, "Reuse an existing folder with the same name")
	rootCmd.AddCommand(mkdirCmd)
}

func runMkdirCommand(cmd *cobra.Command, args []string) error {
	svc, cfg, err := newDrive(cmd.Context())
	if err != nil {
		return err
	}

	name := args[0]

	parentID := cfg.RootFolderID
	if mkdirParent != "" {
		if parentID, err = resolveID(mkdirParent); err != nil {
			return err
		}
	}

	if mkdirIfMissing {
		existing, err := svc.FindFolderByName(cmd.Context(), name, parentID)
		if err != nil {
			return err
		}

		if existing != "" {
			fmt.Println(existing)

			return nil
		}
	}

	id, err := svc.CreateFolder(cmd.Context(), name, parentID)
	if err != nil {
		return err
	}

	fmt.Println(id)

	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var foldersName string

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List all folders in the drive",
	Long: `List every non-trashed folder visible to the authorized account.

With --name the listing is replaced by a lookup for the first folder under
the configured root whose name matches exactly.`,
	Args: cobra.NoArgs,
	RunE: runFoldersCommand,
}

func init() {
	foldersCmd.Flags().StringVar(&foldersName, "name", "", "Look up a single folder by exact name")
	rootCmd.AddCommand(foldersCmd)
}

func runFoldersCommand(cmd *cobra.Command, args []string) error {
	svc, cfg, err := newDrive(cmd.Context())
	if err != nil {
		return err
	}

	if foldersName != "" {
		id, err := svc.FindFolderByName(cmd.Context(), foldersName, cfg.RootFolderID)
		if err != nil {
			return err
		}

		if id == "" {
			return fmt.Errorf("no folder named %q", foldersName)
		}

		fmt.Println(id)

		return nil
	}

	folders, err := svc.ListAllFolders(cmd.Context())
	if err != nil {
		return err
	}

	if len(folders) == 0 {
		fmt.Println("No folders found.")

		return nil
	}

	for _, folder := range folders {
		fmt.Printf("%s  %s\n", folder.Name, folder.ID)
	}

	return nil
}

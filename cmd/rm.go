package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	rmFolder bool
	rmForce  bool
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Permanently delete a file or folder",
	Long: `Permanently delete an item, bypassing the trash.

Files and folders are deleted through separate paths so that a folder ID
passed without --folder (or the reverse) is rejected before anything is
removed. Deleting a folder also deletes everything inside it.`,
	Args: cobra.ExactArgs(1),
	RunE: runRmCommand,
}

func init() {
	rmCmd.Flags().BoolVar(&rmFolder, "folder", false, "Delete a folder and all of its contents")
	rmCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(rmCmd)
}

func runRmCommand(cmd *cobra.Command, args []string) error {
	id, err := resolveID(args[0])
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf("Permanently delete %s?", id)
	if rmFolder {
		prompt = fmt.Sprintf("Permanently delete folder %s and all of its contents?", id)
	}

	ok, err := confirmDestructive(prompt, rmForce)
	if err != nil {
		return err
	}

	if !ok {
		fmt.Println("Aborted.")

		return nil
	}

	svc, _, err := newDrive(cmd.Context())
	if err != nil {
		return err
	}

	if rmFolder {
		err = svc.DeleteFolder(cmd.Context(), id)
	} else {
		err = svc.DeleteFile(cmd.Context(), id)
	}

	if err != nil {
		return err
	}

	fmt.Printf("Deleted %s\n", id)

	return nil
}

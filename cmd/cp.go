package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	cpName   string
	cpParent string
)

var cpCmd = &cobra.Command{
	Use:   "cp <id>",
	Short: "Copy a file",
	Long: `Create a server-side copy of a file.

The copy lands in the configured root unless --parent names another folder.
Without --name the copy keeps the source name. Folders cannot be copied.`,
	Args: cobra.ExactArgs(1),
	RunE: runCpCommand,
}

func init() {
	cpCmd.Flags().StringVar(&cpName, "name", "", "Name for the copy (default: same as the source)")
	cpCmd.Flags().StringVar(&cpParent, "parent", "", "Destination folder ID or URL (default: configured root)")
	rootCmd.AddCommand(cpCmd)
}

func runCpCommand(cmd *cobra.Command, args []string) error {
	svc, cfg, err := newDrive(cmd.Context())
	if err != nil {
		return err
	}

	id, err := resolveID(args[0])
	if err != nil {
		return err
	}

	parentID := cfg.RootFolderID
	if cpParent != "" {
		if parentID, err = resolveID(cpParent); err != nil {
			return err
		}
	}

	copyID, err := svc.Copy(cmd.Context(), id, parentID, cpName)
	if err != nil {
		return err
	}

	fmt.Println(copyID)

	return nil
}

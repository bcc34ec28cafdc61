package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <id> <new-name>",
	Short: "Rename a file or folder",
	Args:  cobra.ExactArgs(2),
	RunE:  runRenameCommand,
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRenameCommand(cmd *cobra.Command, args []string) error {
	svc, _, err := newDrive(cmd.Context())
	if err != nil {
		return err
	}

	id, err := resolveID(args[0])
	if err != nil {
		return err
	}

	if err := svc.Rename(cmd.Context(), id, args[1]); err != nil {
		return err
	}

	fmt.Printf("Renamed %s to %s\n", id, args[1])

	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mvFrom string

var mvCmd = &cobra.Command{
	Use:   "mv <id> <folder-id>",
	Short: "Move an item to another folder",
	Long: `Move a file or folder into a different parent folder.

By default the item leaves the configured root folder. Pass --from when
the item currently sits somewhere else.`,
	Args: cobra.ExactArgs(2),
	RunE: runMvCommand,
}

func init() {
	mvCmd.Flags().StringVar(&mvFrom, "from", "", "Current parent folder ID (default: configured root)")
	rootCmd.AddCommand(mvCmd)
}

func runMvCommand(cmd *cobra.Command, args []string) error {
	svc, cfg, err := newDrive(cmd.Context())
	if err != nil {
		return err
	}

	id, err := resolveID(args[0])
	if err != nil {
		return err
	}

	destID, err := resolveID(args[1])
	if err != nil {
		return err
	}

	fromID := cfg.RootFolderID
	if mvFrom != "" {
		if fromID, err = resolveID(mvFrom); err != nil {
			return err
		}
	}

	if err := svc.Move(cmd.Context(), id, fromID, destID); err != nil {
		return err
	}

	fmt.Printf("Moved %s to %s\n", id, destID)

	return nil
}

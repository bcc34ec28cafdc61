package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var trashEmptyForce bool

var trashCmd = &cobra.Command{
	Use:   "trash <id>",
	Short: "Move an item to the trash",
	Long: `Move a file or folder to the trash.

Trashed items can be brought back with 'trash restore' until the trash is
emptied. Subcommands list, restore, and empty the trash.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrashCommand,
}

var trashListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trashed items",
	Args:  cobra.NoArgs,
	RunE:  runTrashListCommand,
}

var trashRestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Restore an item from the trash",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrashRestoreCommand,
}

var trashEmptyCmd = &cobra.Command{
	Use:   "empty",
	Short: "Permanently delete everything in the trash",
	Args:  cobra.NoArgs,
	RunE:  runTrashEmptyCommand,
}

func init() {
	trashEmptyCmd.Flags().BoolVarP(&trashEmptyForce, "force", "f", false, "Skip the confirmation prompt")
	trashCmd.AddCommand(trashListCmd)
	trashCmd.AddCommand(trashRestoreCmd)
	trashCmd.AddCommand(trashEmptyCmd)
	rootCmd.AddCommand(trashCmd)
}

func runTrashCommand(cmd *cobra.Command, args []string) error {
	svc, _, err := newDrive(cmd.Context())
	if err != nil {
		return err
	}

	id, err := resolveID(args[0])
	if err != nil {
		return err
	}

	if err := svc.Trash(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Printf("Trashed %s\n", id)

	return nil
}

func runTrashListCommand(cmd *cobra.Command, args []string) error {
	svc, cfg, err := newDrive(cmd.Context())
	if err != nil {
		return err
	}

	items, err := svc.ListTrashed(cmd.Context(), cfg.PageSize)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("Trash is empty.")

		return nil
	}

	for _, item := range items {
		fmt.Printf("%s  %s  (%s)\n", item.Name, item.ID, item.MimeType)
	}

	return nil
}

func runTrashRestoreCommand(cmd *cobra.Command, args []string) error {
	svc, _, err := newDrive(cmd.Context())
	if err != nil {
		return err
	}

	id, err := resolveID(args[0])
	if err != nil {
		return err
	}

	if err := svc.Untrash(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Printf("Restored %s\n", id)

	return nil
}

func runTrashEmptyCommand(cmd *cobra.Command, args []string) error {
	ok, err := confirmDestructive("Permanently delete everything in the trash?", trashEmptyForce)
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

	if err := svc.EmptyTrash(cmd.Context()); err != nil {
		return err
	}

	fmt.Println("Trash emptied.")

	return nil
}

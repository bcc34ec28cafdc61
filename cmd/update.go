package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var updateMimeType string

var updateCmd = &cobra.Command{
	Use:   "update <id> <path>",
	Short: "Replace a file's content",
	Long: `Replace the content of an existing file with a local file's bytes.

Only the bytes change; the name, parents, and other metadata stay as they
were.`,
	Args: cobra.ExactArgs(2),
	RunE: runUpdateCommand,
}

func init() {
	updateCmd.Flags().StringVar(&updateMimeType, "type", "", "Content type (default: guessed from the local file's extension)")
	rootCmd.AddCommand(updateCmd)
}

func runUpdateCommand(cmd *cobra.Command, args []string) error {
	svc, _, err := newDrive(cmd.Context())
	if err != nil {
		return err
	}

	id, err := resolveID(args[0])
	if err != nil {
		return err
	}

	path := args[1]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", path, err)
	}

	defer func() {
		_ = f.Close()
	}()

	contentType := updateMimeType
	if contentType == "" {
		contentType = guessContentType(path)
	}

	if err := svc.UpdateContent(cmd.Context(), id, f, contentType, nil); err != nil {
		return err
	}

	fmt.Printf("Updated %s from %s\n", id, filepath.Base(path))

	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"gdrivekit/internal/config"

	"github.com/spf13/cobra"
)

var (
	credentialsPath string
	configDir       string
	debugMode       bool
)

var rootCmd = &cobra.Command{
	Use:   "gdrivekit",
	Short: "Manage Google Drive files and folders from the command line",
	Long: `gdrivekit wraps the Google Drive API for everyday file and folder work:
listing, uploading, downloading, copying, moving, and trash management.

Commands:
  auth      Authorize with Google Drive and inspect token state
  ls        List items in a folder
  folders   List every folder with its parents
  mkdir     Create a folder
  get       Download files
  put       Upload files
  export    Export a Workspace document to stdout
  trash     Manage the trash
  config    Manage configuration files`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debugMode {
			level = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)

		if credentialsPath != "" {
			config.SetCustomCredentialsPath(credentialsPath)
		}

		if configDir != "" {
			config.SetCustomConfigDir(configDir)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&credentialsPath, "credentials", "c", "", "Path to credentials.json file")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Custom configuration directory")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "Enable debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"gdrivekit/internal/config"
	"gdrivekit/internal/gdrive/auth"

	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authorize with Google Drive",
	Long: `Run the OAuth authorization flow and cache the resulting token.

The first run prints an authorization URL; paste the code Google shows you
back into the terminal. Later runs reuse the cached token.`,
	RunE: runAuthCommand,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authorization state",
	RunE:  runAuthStatusCommand,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the cached token",
	RunE:  runAuthLogoutCommand,
}

func init() {
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authLogoutCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthCommand(cmd *cobra.Command, _ []string) error {
	session, _, err := newSession(cmd.Context())
	if err != nil {
		return err
	}

	defer func() {
		_ = session.Close()
	}()

	refreshed, err := session.RefreshIfStale(cmd.Context())
	if err != nil {
		return err
	}

	if refreshed {
		fmt.Println("Authorized (token refreshed).")
	} else {
		fmt.Println("Authorized.")
	}

	return nil
}

func runAuthStatusCommand(*cobra.Command, []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	flow, err := auth.NewFlow(auth.Options{
		CredentialsPath: cfg.CredentialsPath,
		TokenDir:        cfg.TokenDir,
		User:            cfg.User,
	})
	if err != nil {
		return err
	}

	if flow.HasCachedToken() {
		fmt.Printf("Token cached for user %q in %s.\n", cfg.User, cfg.TokenDir)
	} else {
		fmt.Println("No cached token. Run 'gdrivekit auth' to authorize.")
	}

	return nil
}

func runAuthLogoutCommand(*cobra.Command, []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	flow, err := auth.NewFlow(auth.Options{
		CredentialsPath: cfg.CredentialsPath,
		TokenDir:        cfg.TokenDir,
		User:            cfg.User,
	})
	if err != nil {
		return err
	}

	if err := flow.ClearToken(); err != nil {
		return err
	}

	fmt.Println("Logged out.")

	return nil
}

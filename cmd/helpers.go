package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"gdrivekit/internal/config"
	"gdrivekit/internal/gdrive"
	"gdrivekit/internal/gdrive/auth"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// newDrive loads configuration, authorizes a session, and returns the
// connected gateway along with the loaded config.
func newDrive(ctx context.Context) (*gdrive.Service, *config.Config, error) {
	session, cfg, err := newSession(ctx)
	if err != nil {
		return nil, nil, err
	}

	svc, err := session.Drive()
	if err != nil {
		return nil, nil, err
	}

	return svc, cfg, nil
}

// newSession builds and authorizes a session from the loaded configuration.
func newSession(ctx context.Context) (*gdrive.Session, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	flow, err := auth.NewFlow(auth.Options{
		CredentialsPath: cfg.CredentialsPath,
		TokenDir:        cfg.TokenDir,
		User:            cfg.User,
		Prompt:          promptForAuthCode,
	})
	if err != nil {
		return nil, nil, err
	}

	session := gdrive.NewSession(flow, cfg.ApplicationName)
	if err := session.Authorize(ctx); err != nil {
		return nil, nil, err
	}

	return session, cfg, nil
}

// promptForAuthCode walks the user through the manual authorization-code
// step of the OAuth flow.
func promptForAuthCode(authURL string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("authorization required but stdin is not a terminal; run 'gdrivekit auth' interactively first")
	}

	fmt.Fprintf(os.Stderr, "Open the following link in your browser and approve access:\n\n  %s\n\n", authURL)
	fmt.Fprint(os.Stderr, "Authorization code: ")

	code, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("unable to read authorization code: %w", err)
	}

	return strings.TrimSpace(code), nil
}

// confirmDestructive asks before an irreversible operation. Non-interactive
// runs must pass --force instead.
func confirmDestructive(prompt string, force bool) (bool, error) {
	if force {
		return true, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("refusing %q without --force in a non-interactive run", prompt)
	}

	var confirmed bool

	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(prompt).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	))

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	return confirmed, nil
}

// resolveID accepts either a bare file ID or any supported Drive URL shape.
func resolveID(arg string) (string, error) {
	return gdrive.ExtractFileID(arg)
}

// Package auth implements the OAuth authorization strategy: installed-app
// credentials from credentials.json and a per-user token cached on disk.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"

	"gdrivekit/internal/gdrive"
)

// Options locates the OAuth client credentials and the token cache.
type Options struct {
	// CredentialsPath is the OAuth client secret JSON (default
	// credentials.json).
	CredentialsPath string
	// TokenDir is the token cache directory (default _metadata).
	TokenDir string
	// User keys the cached token inside TokenDir (default user).
	User string
	// Prompt displays the authorization URL and collects the code when no
	// cached token exists. Required for the interactive flow.
	Prompt func(authURL string) (code string, err error)
}

func (o Options) withDefaults() Options {
	if o.CredentialsPath == "" {
		o.CredentialsPath = "credentials.json"
	}

	if o.TokenDir == "" {
		o.TokenDir = "_metadata"
	}

	if o.User == "" {
		o.User = "user"
	}

	return o
}

// Flow is the production gdrive.Authorizer. It reads the OAuth config once
// and exchanges or loads a token on Authorize.
type Flow struct {
	opts Options
	cfg  *oauth2.Config
}

var _ gdrive.Authorizer = (*Flow)(nil)

// NewFlow reads the OAuth client configuration from opts.CredentialsPath,
// requesting the full Drive scope.
func NewFlow(opts Options) (*Flow, error) {
	opts = opts.withDefaults()

	data, err := os.ReadFile(opts.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file: %w", err)
	}

	cfg, err := google.ConfigFromJSON(data, drive.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials file: %w", err)
	}

	return &Flow{opts: opts, cfg: cfg}, nil
}

// Authorize returns the cached token when one exists, otherwise runs the
// interactive authorization-code flow and caches the result.
func (f *Flow) Authorize(ctx context.Context) (*oauth2.Token, error) {
	token, err := f.loadToken()
	if err == nil {
		return token, nil
	}

	if f.opts.Prompt == nil {
		return nil, fmt.Errorf("no cached token at %s and no prompt configured: %w", f.tokenPath(), err)
	}

	authURL := f.cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)

	code, err := f.opts.Prompt(authURL)
	if err != nil {
		return nil, fmt.Errorf("authorization prompt failed: %w", err)
	}

	token, err = f.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("unable to exchange authorization code: %w", err)
	}

	if err := f.saveToken(token); err != nil {
		return nil, err
	}

	return token, nil
}

// TokenSource returns a refreshing token source seeded with token.
func (f *Flow) TokenSource(ctx context.Context, token *oauth2.Token) oauth2.TokenSource {
	return f.cfg.TokenSource(ctx, token)
}

// Client returns an HTTP client that attaches and transparently refreshes
// the credential.
func (f *Flow) Client(ctx context.Context, token *oauth2.Token) *http.Client {
	return f.cfg.Client(ctx, token)
}

// HasCachedToken reports whether a token is already cached for this user.
func (f *Flow) HasCachedToken() bool {
	_, err := f.loadToken()

	return err == nil
}

// ClearToken removes the cached token, forcing the interactive flow on the
// next Authorize.
func (f *Flow) ClearToken() error {
	if err := os.Remove(f.tokenPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("unable to remove cached token: %w", err)
	}

	return nil
}

func (f *Flow) tokenPath() string {
	return filepath.Join(f.opts.TokenDir, f.opts.User+".json")
}

func (f *Flow) loadToken() (*oauth2.Token, error) {
	data, err := os.ReadFile(f.tokenPath())
	if err != nil {
		return nil, fmt.Errorf("unable to read cached token: %w", err)
	}

	token := &oauth2.Token{}
	if err := json.Unmarshal(data, token); err != nil {
		return nil, fmt.Errorf("unable to parse cached token: %w", err)
	}

	return token, nil
}

func (f *Flow) saveToken(token *oauth2.Token) error {
	if err := os.MkdirAll(f.opts.TokenDir, 0o700); err != nil {
		return fmt.Errorf("unable to create token directory: %w", err)
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("unable to marshal token: %w", err)
	}

	if err := os.WriteFile(f.tokenPath(), data, 0o600); err != nil {
		return fmt.Errorf("unable to write cached token: %w", err)
	}

	return nil
}

package gdrive

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Authorizer is the swappable authorization strategy. The production
// implementation lives in internal/gdrive/auth and runs the OAuth flow with
// a local token cache; tests substitute a fake.
type Authorizer interface {
	// Authorize obtains a credential, interacting with the user if needed.
	Authorize(ctx context.Context) (*oauth2.Token, error)
	// TokenSource returns a refreshing token source seeded with token.
	TokenSource(ctx context.Context, token *oauth2.Token) oauth2.TokenSource
	// Client returns an HTTP client that authenticates with token and
	// refreshes it transparently.
	Client(ctx context.Context, token *oauth2.Token) *http.Client
}

// sessionState is the explicit lifecycle value: unauthenticated until
// Authorize, authenticated until Close, disposed after.
type sessionState int

const (
	stateUnauthenticated sessionState = iota
	stateAuthenticated
	stateDisposed
)

// Session owns the credential lifecycle and the connected Drive service
// handle. Lifecycle transitions (Authorize, Close) are not safe for
// concurrent use; callers serialize them.
type Session struct {
	authorizer Authorizer
	appName    string

	state   sessionState
	token   *oauth2.Token
	service *Service
}

// NewSession creates an unauthenticated session. appName is attached to
// outgoing requests when non-empty.
func NewSession(authorizer Authorizer, appName string) *Session {
	return &Session{authorizer: authorizer, appName: appName}
}

// Authorize obtains a credential through the authorization strategy and
// builds the connected Drive service. Calling it again without an
// intervening Close fails with ErrAlreadyAuthorized.
func (s *Session) Authorize(ctx context.Context) error {
	switch s.state {
	case stateDisposed:
		return ErrSessionClosed
	case stateAuthenticated:
		return ErrAlreadyAuthorized
	}

	token, err := s.authorizer.Authorize(ctx)
	if err != nil {
		return fmt.Errorf("authorization failed: %w", err)
	}

	opts := []option.ClientOption{option.WithHTTPClient(s.authorizer.Client(ctx, token))}
	if s.appName != "" {
		opts = append(opts, option.WithUserAgent(s.appName))
	}

	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return fmt.Errorf("unable to create Drive client: %w", err)
	}

	s.token = token
	s.service = NewService(NewDriveAPI(svc))
	s.state = stateAuthenticated

	return nil
}

// IsAuthorized reports whether the session currently holds a credential.
// False before Authorize and after Close; never an error.
func (s *Session) IsAuthorized() bool {
	return s.state == stateAuthenticated
}

// IsTokenStale reports whether the held credential has expired. False when
// unauthenticated.
func (s *Session) IsTokenStale() bool {
	if s.state != stateAuthenticated || s.token == nil {
		return false
	}

	return !s.token.Valid()
}

// RefreshIfStale refreshes the credential in place when it is stale and
// reports whether a refresh happened. The transport refreshes transparently
// on demand anyway; this only front-loads the cost before a batch of calls.
func (s *Session) RefreshIfStale(ctx context.Context) (bool, error) {
	if s.state == stateDisposed {
		return false, ErrSessionClosed
	}

	if !s.IsTokenStale() {
		return false, nil
	}

	fresh, err := s.authorizer.TokenSource(ctx, s.token).Token()
	if err != nil {
		return false, fmt.Errorf("token refresh failed: %w", err)
	}

	*s.token = *fresh

	return true, nil
}

// Drive returns the connected gateway, failing with ErrNotAuthorized or
// ErrSessionClosed instead of issuing network traffic from a bad state.
func (s *Session) Drive() (*Service, error) {
	switch s.state {
	case stateDisposed:
		return nil, ErrSessionClosed
	case stateUnauthenticated:
		return nil, ErrNotAuthorized
	}

	return s.service, nil
}

// Close releases the credential and service handle. Any subsequent operation
// fails with ErrSessionClosed.
func (s *Session) Close() error {
	s.token = nil
	s.service = nil
	s.state = stateDisposed

	return nil
}

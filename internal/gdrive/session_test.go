package gdrive

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// fakeAuthorizer satisfies Authorizer without performing OAuth.
type fakeAuthorizer struct {
	token        *oauth2.Token
	authorizeErr error
	refreshed    *oauth2.Token
	authorized   int
	refreshes    int
}

func (f *fakeAuthorizer) Authorize(context.Context) (*oauth2.Token, error) {
	f.authorized++
	if f.authorizeErr != nil {
		return nil, f.authorizeErr
	}

	return f.token, nil
}

func (f *fakeAuthorizer) TokenSource(context.Context, *oauth2.Token) oauth2.TokenSource {
	f.refreshes++

	return oauth2.StaticTokenSource(f.refreshed)
}

func (f *fakeAuthorizer) Client(context.Context, *oauth2.Token) *http.Client {
	return &http.Client{}
}

func freshToken() *oauth2.Token {
	return &oauth2.Token{AccessToken: "fresh", Expiry: time.Now().Add(time.Hour)}
}

func staleToken() *oauth2.Token {
	return &oauth2.Token{AccessToken: "stale", Expiry: time.Now().Add(-time.Hour)}
}

func TestSessionAuthorize(t *testing.T) {
	t.Run("connects and exposes the gateway", func(t *testing.T) {
		auth := &fakeAuthorizer{token: freshToken()}
		s := NewSession(auth, "gdrivekit-test")

		require.NoError(t, s.Authorize(context.Background()))
		assert.True(t, s.IsAuthorized())

		svc, err := s.Drive()
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("double authorize fails", func(t *testing.T) {
		auth := &fakeAuthorizer{token: freshToken()}
		s := NewSession(auth, "")

		require.NoError(t, s.Authorize(context.Background()))

		err := s.Authorize(context.Background())
		assert.ErrorIs(t, err, ErrAlreadyAuthorized)
		assert.Equal(t, 1, auth.authorized, "second call must not reach the strategy")
	})

	t.Run("strategy failure leaves session unauthenticated", func(t *testing.T) {
		auth := &fakeAuthorizer{authorizeErr: assert.AnError}
		s := NewSession(auth, "")

		err := s.Authorize(context.Background())
		require.Error(t, err)
		assert.False(t, s.IsAuthorized())

		_, err = s.Drive()
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})
}

func TestSessionQueriesBeforeAuthorize(t *testing.T) {
	s := NewSession(&fakeAuthorizer{}, "")

	// Pure queries, never errors.
	assert.False(t, s.IsAuthorized())
	assert.False(t, s.IsTokenStale())

	_, err := s.Drive()
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestSessionRefreshIfStale(t *testing.T) {
	t.Run("no-op when unauthenticated", func(t *testing.T) {
		auth := &fakeAuthorizer{}
		s := NewSession(auth, "")

		refreshed, err := s.RefreshIfStale(context.Background())
		require.NoError(t, err)
		assert.False(t, refreshed)
		assert.Zero(t, auth.refreshes)
	})

	t.Run("no-op when token fresh", func(t *testing.T) {
		auth := &fakeAuthorizer{token: freshToken()}
		s := NewSession(auth, "")
		require.NoError(t, s.Authorize(context.Background()))

		refreshed, err := s.RefreshIfStale(context.Background())
		require.NoError(t, err)
		assert.False(t, refreshed)
	})

	t.Run("refreshes stale token in place", func(t *testing.T) {
		auth := &fakeAuthorizer{token: staleToken(), refreshed: freshToken()}
		s := NewSession(auth, "")
		require.NoError(t, s.Authorize(context.Background()))
		require.True(t, s.IsTokenStale())

		refreshed, err := s.RefreshIfStale(context.Background())
		require.NoError(t, err)
		assert.True(t, refreshed)
		assert.False(t, s.IsTokenStale())
	})
}

func TestSessionClose(t *testing.T) {
	auth := &fakeAuthorizer{token: freshToken()}
	s := NewSession(auth, "")
	require.NoError(t, s.Authorize(context.Background()))
	require.NoError(t, s.Close())

	assert.False(t, s.IsAuthorized())

	_, err := s.Drive()
	assert.ErrorIs(t, err, ErrSessionClosed)

	err = s.Authorize(context.Background())
	assert.ErrorIs(t, err, ErrSessionClosed)

	_, err = s.RefreshIfStale(context.Background())
	assert.ErrorIs(t, err, ErrSessionClosed)
}

package providers

import (
	"context"

	"golang.org/x/oauth2"
)

// OAuthUser is the normalized identity returned by an OAuth provider.
// Only the identify scope is requested, so there is no email here.
type OAuthUser struct {
	ID        string
	Name      string
	AvatarURL string
}

// OAuthProvider is the interface that all OAuth providers implement.
type OAuthProvider interface {
	Name() string
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*OAuthUser, error)
}

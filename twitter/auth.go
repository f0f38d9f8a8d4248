package twitter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dghubble/oauth1"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// DefaultTokenURL is the endpoint issuing app-only bearer tokens
const DefaultTokenURL = "https://api.twitter.com/oauth2/token"

// UserCredentials are the OAuth 1.0a keys for user-context requests
type UserCredentials struct {
	ConsumerKey       string
	ConsumerSecret    string
	AccessToken       string
	AccessTokenSecret string
}

// Validate checks that every key is present
func (c UserCredentials) Validate() error {
	switch {
	case c.ConsumerKey == "":
		return fmt.Errorf("%w: consumer key is required", ErrInvalidConfig)
	case c.ConsumerSecret == "":
		return fmt.Errorf("%w: consumer secret is required", ErrInvalidConfig)
	case c.AccessToken == "":
		return fmt.Errorf("%w: access token is required", ErrInvalidConfig)
	case c.AccessTokenSecret == "":
		return fmt.Errorf("%w: access token secret is required", ErrInvalidConfig)
	}
	return nil
}

// NewUserHTTPClient returns an http.Client that signs every request with
// OAuth 1.0a on behalf of the user owning the access token. Posting,
// retweeting, deleting and the home/mentions timelines require this.
func NewUserHTTPClient(ctx context.Context, creds UserCredentials, timeout time.Duration) (*http.Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	config := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessTokenSecret)

	httpClient := config.Client(ctx, token)
	httpClient.Timeout = timeout
	return httpClient, nil
}

// NewAppHTTPClient returns an http.Client authenticating with an app-only
// bearer token obtained through the client credentials grant. It can read
// public data (status lookup, user timelines, geo) but cannot act as a user.
func NewAppHTTPClient(ctx context.Context, consumerKey, consumerSecret, tokenURL string, timeout time.Duration) (*http.Client, error) {
	if consumerKey == "" || consumerSecret == "" {
		return nil, fmt.Errorf("%w: consumer key and secret are required", ErrInvalidConfig)
	}
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}

	config := &clientcredentials.Config{
		ClientID:     consumerKey,
		ClientSecret: consumerSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	// The token request itself goes through this client
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: timeout})

	httpClient := config.Client(ctx)
	httpClient.Timeout = timeout
	return httpClient, nil
}

// internal/auth/verifier.go
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Claims is what the identity provider tells us about a signed-in user.
type Claims struct {
	Subject string
	Email   string
	Name    string
	Expiry  time.Time
}

// Verifier checks a bearer token and returns the identity behind it.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleVerifier validates Google ID tokens against the tokeninfo
// endpoint. The dashboard signs users in with Google and sends the ID
// token as a bearer credential.
type GoogleVerifier struct {
	ClientID string
	Client   *http.Client
	Endpoint string // overridable for tests
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		ClientID: clientID,
		Client:   &http.Client{Timeout: 10 * time.Second},
		Endpoint: googleTokenInfoURL,
	}
}

func (v *GoogleVerifier) Verify(ctx context.Context, token string) (*Claims, error) {
	endpoint := v.Endpoint
	if endpoint == "" {
		endpoint = googleTokenInfoURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		endpoint+"?id_token="+url.QueryEscape(token), nil)
	if err != nil {
		return nil, err
	}

	client := v.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token rejected by provider (status %d)", resp.StatusCode)
	}

	var info struct {
		Sub      string `json:"sub"`
		Email    string `json:"email"`
		Name     string `json:"name"`
		Audience string `json:"aud"`
		Expiry   string `json:"exp"` // unix seconds, as a string
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode tokeninfo: %w", err)
	}

	if v.ClientID != "" && info.Audience != v.ClientID {
		return nil, fmt.Errorf("token audience %q does not match client", info.Audience)
	}

	expSec, err := strconv.ParseInt(info.Expiry, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad expiry in tokeninfo: %w", err)
	}

	return &Claims{
		Subject: info.Sub,
		Email:   info.Email,
		Name:    info.Name,
		Expiry:  time.Unix(expSec, 0),
	}, nil
}

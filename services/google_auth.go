package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/oauth2"
)

const (
	defaultTokenInfoURL = "https://www.googleapis.com/oauth2/v1/tokeninfo"
	defaultUserInfoURL  = "https://www.googleapis.com/oauth2/v1/userinfo"
	defaultRevokeURL    = "https://accounts.google.com/o/oauth2/revoke"
)

// GoogleAuthService handles the Google OAuth handshake: authorization-code
// exchange, token verification against tokeninfo, userinfo retrieval and
// token revocation. All calls are blocking HTTP requests bounded by the
// client timeout; none are retried. The endpoint URLs are fields so tests
// can point them at a local server.
type GoogleAuthService struct {
	Config       *oauth2.Config
	Client       *http.Client
	TokenInfoURL string
	UserInfoURL  string
	RevokeURL    string
}

// GoogleUser represents the userinfo payload.
type GoogleUser struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleTokenInfo represents the tokeninfo verification payload.
type GoogleTokenInfo struct {
	UserID   string `json:"user_id"`
	IssuedTo string `json:"issued_to"`
	Error    string `json:"error"`
}

// GoogleCredentials is the result of a successful code exchange.
type GoogleCredentials struct {
	AccessToken string
	GplusID     string // "sub" claim of the id_token
}

// NewGoogleAuthService creates a new Google auth service.
func NewGoogleAuthService(cfg *oauth2.Config) *GoogleAuthService {
	return &GoogleAuthService{
		Config:       cfg,
		Client:       &http.Client{Timeout: 10 * time.Second},
		TokenInfoURL: defaultTokenInfoURL,
		UserInfoURL:  defaultUserInfoURL,
		RevokeURL:    defaultRevokeURL,
	}
}

// ExchangeCode upgrades the one-time authorization code into credentials.
func (s *GoogleAuthService) ExchangeCode(ctx context.Context, code string) (*GoogleCredentials, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.Client)
	token, err := s.Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to upgrade the authorization code: %w", err)
	}

	rawIDToken, _ := token.Extra("id_token").(string)
	sub, err := subjectFromIDToken(rawIDToken)
	if err != nil {
		return nil, err
	}

	return &GoogleCredentials{
		AccessToken: token.AccessToken,
		GplusID:     sub,
	}, nil
}

// subjectFromIDToken extracts the "sub" claim. The access token itself is
// verified against the tokeninfo endpoint, so no local signature check is
// performed here.
func subjectFromIDToken(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("no id_token in exchange response")
	}

	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(raw, claims); err != nil {
		return "", fmt.Errorf("malformed id_token: %w", err)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("id_token has no subject")
	}
	return sub, nil
}

// TokenInfo verifies an access token against the tokeninfo endpoint.
// Verification failures are reported inside the payload, not as an error.
func (s *GoogleAuthService) TokenInfo(ctx context.Context, accessToken string) (*GoogleTokenInfo, error) {
	body, err := s.get(ctx, s.TokenInfoURL+"?access_token="+url.QueryEscape(accessToken))
	if err != nil {
		return nil, err
	}

	info := &GoogleTokenInfo{}
	if err := json.Unmarshal(body, info); err != nil {
		return nil, fmt.Errorf("invalid tokeninfo response: %w", err)
	}
	return info, nil
}

// UserInfo fetches the profile for a verified access token.
func (s *GoogleAuthService) UserInfo(ctx context.Context, accessToken string) (*GoogleUser, error) {
	body, err := s.get(ctx, s.UserInfoURL+"?alt=json&access_token="+url.QueryEscape(accessToken))
	if err != nil {
		return nil, err
	}

	user := &GoogleUser{}
	if err := json.Unmarshal(body, user); err != nil {
		return nil, fmt.Errorf("invalid userinfo response: %w", err)
	}
	if user.Email == "" {
		return nil, errors.New("userinfo response missing email")
	}
	return user, nil
}

// RevokeToken revokes an access token. A non-200 status means the token was
// already invalid or could not be revoked.
func (s *GoogleAuthService) RevokeToken(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.RevokeURL+"?token="+url.QueryEscape(accessToken), nil)
	if err != nil {
		return err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("revoke endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

// get performs a GET and returns the body regardless of status; tokeninfo
// conveys verification failures in the JSON body of non-200 responses.
func (s *GoogleAuthService) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

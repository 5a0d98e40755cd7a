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
)

const defaultGraphURL = "https://graph.facebook.com"

// FacebookAuthService handles the Facebook OAuth handshake over the Graph
// API. The client's short-lived token is exchanged for a long-lived one,
// the profile is read from /me, and logout revokes the app permission.
type FacebookAuthService struct {
	AppID     string
	AppSecret string
	Client    *http.Client
	GraphURL  string
}

// FacebookUser represents the Graph /me payload.
type FacebookUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

// NewFacebookAuthService creates a new Facebook auth service.
func NewFacebookAuthService(appID, appSecret string) *FacebookAuthService {
	return &FacebookAuthService{
		AppID:     appID,
		AppSecret: appSecret,
		Client:    &http.Client{Timeout: 10 * time.Second},
		GraphURL:  defaultGraphURL,
	}
}

// ExchangeToken trades the client's short-lived access token for a
// long-lived one.
func (s *FacebookAuthService) ExchangeToken(ctx context.Context, shortToken string) (string, error) {
	q := url.Values{}
	q.Set("grant_type", "fb_exchange_token")
	q.Set("client_id", s.AppID)
	q.Set("client_secret", s.AppSecret)
	q.Set("fb_exchange_token", shortToken)

	body, status, err := s.do(ctx, http.MethodGet, s.GraphURL+"/oauth/access_token?"+q.Encode())
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("token exchange returned status %d: %s", status, body)
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("invalid token exchange response: %w", err)
	}
	if result.AccessToken == "" {
		return "", errors.New("token exchange response missing access_token")
	}
	return result.AccessToken, nil
}

// UserInfo fetches the profile fields used by the session.
func (s *FacebookAuthService) UserInfo(ctx context.Context, accessToken string) (*FacebookUser, error) {
	u := s.GraphURL + "/v3.1/me?fields=id,name,email,picture&access_token=" + url.QueryEscape(accessToken)
	body, status, err := s.do(ctx, http.MethodGet, u)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d: %s", status, body)
	}

	user := &FacebookUser{}
	if err := json.Unmarshal(body, user); err != nil {
		return nil, fmt.Errorf("invalid userinfo response: %w", err)
	}
	if user.Email == "" {
		return nil, errors.New("userinfo response missing email")
	}
	return user, nil
}

// Revoke deletes the app permission grant, logging the user out of the app.
func (s *FacebookAuthService) Revoke(ctx context.Context, facebookID, accessToken string) error {
	u := fmt.Sprintf("%s/%s/permissions?access_token=%s",
		s.GraphURL, url.PathEscape(facebookID), url.QueryEscape(accessToken))
	body, status, err := s.do(ctx, http.MethodDelete, u)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("revoke returned status %d: %s", status, body)
	}
	return nil
}

func (s *FacebookAuthService) do(ctx context.Context, method, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}

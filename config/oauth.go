// config/oauth.go
package config

import (
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// OAuthConfig carries the provider credentials, loaded once at process start.
type OAuthConfig struct {
	Google      *oauth2.Config
	FBAppID     string
	FBAppSecret string
}

// LoadOAuth reads the provider client id/secret pairs from the environment.
// Missing credentials are logged but not fatal so the public surface stays
// usable without either provider configured.
func LoadOAuth() *OAuthConfig {
	googleID := os.Getenv("GOOGLE_CLIENT_ID")
	googleSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	if googleID == "" || googleSecret == "" {
		log.Println("Warning: Google OAuth credentials are not configured")
	}

	fbID := os.Getenv("FB_APP_ID")
	fbSecret := os.Getenv("FB_APP_SECRET")
	if fbID == "" || fbSecret == "" {
		log.Println("Warning: Facebook OAuth credentials are not configured")
	}

	return &OAuthConfig{
		Google: &oauth2.Config{
			ClientID:     googleID,
			ClientSecret: googleSecret,
			// The web client posts the one-time code it obtained itself.
			RedirectURL: "postmessage",
			Endpoint:    google.Endpoint,
		},
		FBAppID:     fbID,
		FBAppSecret: fbSecret,
	}
}

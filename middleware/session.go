// middleware/session.go
package middleware

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"github.com/laudep/ItemCatalog/models"
)

const (
	sessionCookie     = "catalog_session"
	sessionContextKey = "session"
)

// GetSessionSecret returns the secret used to sign session cookies.
func GetSessionSecret() string {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		panic("SESSION_SECRET environment variable is required")
	}
	return secret
}

// LoadSession decodes the signed session cookie into a models.Session and
// stores it on the request context. A missing, expired or tampered cookie
// yields a fresh empty session rather than an error.
func LoadSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			SetSession(c, decodeSession(c))
			return next(c)
		}
	}
}

func decodeSession(c echo.Context) *models.Session {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return &models.Session{}
	}

	sess := &models.Session{}
	token, err := jwt.ParseWithClaims(cookie.Value, sess, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(GetSessionSecret()), nil
	})
	if err != nil || !token.Valid {
		return &models.Session{}
	}
	return sess
}

// GetSession returns the request's session. LoadSession must have run.
func GetSession(c echo.Context) *models.Session {
	if sess, ok := c.Get(sessionContextKey).(*models.Session); ok {
		return sess
	}
	return &models.Session{}
}

// SetSession places a session on the request context.
func SetSession(c echo.Context, sess *models.Session) {
	c.Set(sessionContextKey, sess)
}

// SaveSession signs the session and writes it back as a cookie.
func SaveSession(c echo.Context, sess *models.Session) error {
	sess.IssuedAt = time.Now().Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sess)
	signed, err := token.SignedString([]byte(GetSessionSecret()))
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// RequireLogin redirects anonymous requests to the login flow before any
// mutating handler runs.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !GetSession(c).LoggedIn() {
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}

package controllers

import (
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/laudep/ItemCatalog/middleware"
	"github.com/laudep/ItemCatalog/models"
	"github.com/laudep/ItemCatalog/services"
	"github.com/laudep/ItemCatalog/utils"
)

// AuthController owns the login and logout surface: the state-token issuing
// login page, the per-provider OAuth callbacks and the disconnect routes.
type AuthController struct {
	Google   *services.GoogleAuthService
	Facebook *services.FacebookAuthService
	Users    UserStore
}

func NewAuthController(google *services.GoogleAuthService, facebook *services.FacebookAuthService, users UserStore) *AuthController {
	return &AuthController{
		Google:   google,
		Facebook: facebook,
		Users:    users,
	}
}

// ShowLogin issues a fresh anti-forgery state token and renders the login
// page with it embedded for the provider handshake.
func (a *AuthController) ShowLogin(c echo.Context) error {
	sess := middleware.GetSession(c)
	sess.State = utils.NewStateToken()
	return render(c, http.StatusOK, "login.html", echo.Map{
		"State": sess.State,
	})
}

// GConnect handles the Google OAuth callback. The request body carries the
// one-time authorization code; the state query parameter must echo the
// token issued by ShowLogin.
func (a *AuthController) GConnect(c echo.Context) error {
	sess := middleware.GetSession(c)
	if sess.State == "" || c.QueryParam("state") != sess.State {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid state parameter.",
		})
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Missing authorization code.",
		})
	}
	code := strings.TrimSpace(string(body))

	ctx := c.Request().Context()
	creds, err := a.Google.ExchangeCode(ctx, code)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Failed to upgrade the authorization code.",
		})
	}

	info, err := a.Google.TokenInfo(ctx, creds.AccessToken)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to verify the access token.",
		})
	}
	if info.Error != "" {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: info.Error,
		})
	}
	if info.UserID != creds.GplusID {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Token's user ID doesn't match given user ID.",
		})
	}
	if info.IssuedTo != a.Google.Config.ClientID {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Token's client ID does not match app's.",
		})
	}

	if sess.AccessToken != "" && sess.GplusID == creds.GplusID {
		return c.JSON(http.StatusOK, models.Response{
			Status:  http.StatusOK,
			Message: "Current user is already connected.",
		})
	}

	userInfo, err := a.Google.UserInfo(ctx, creds.AccessToken)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Failed to fetch user info.",
		})
	}

	sess.Provider = "google"
	sess.AccessToken = creds.AccessToken
	sess.GplusID = creds.GplusID
	sess.Email = userInfo.Email
	sess.Picture = userInfo.Picture
	if userInfo.Name != "" {
		sess.Username = userInfo.Name
	} else {
		sess.Username = strings.SplitN(userInfo.Email, "@", 2)[0]
	}

	return a.completeLogin(c, sess)
}

// FBConnect handles the Facebook OAuth callback. The request body carries
// the short-lived access token issued to the client.
func (a *AuthController) FBConnect(c echo.Context) error {
	sess := middleware.GetSession(c)
	if sess.State == "" || c.QueryParam("state") != sess.State {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid state parameter.",
		})
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Missing access token.",
		})
	}
	shortToken := strings.TrimSpace(string(body))

	ctx := c.Request().Context()
	token, err := a.Facebook.ExchangeToken(ctx, shortToken)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Failed to exchange the access token.",
		})
	}

	fbUser, err := a.Facebook.UserInfo(ctx, token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Failed to fetch user info.",
		})
	}

	sess.Provider = "facebook"
	sess.AccessToken = token
	sess.FacebookID = fbUser.ID
	sess.Username = fbUser.Name
	sess.Email = fbUser.Email
	sess.Picture = fbUser.Picture.Data.URL

	return a.completeLogin(c, sess)
}

// completeLogin resolves the local user record for the session identity,
// persists the session and returns the welcome fragment.
func (a *AuthController) completeLogin(c echo.Context, sess *models.Session) error {
	user, err := a.Users.FindOrCreateByEmail(c.Request().Context(), sess.Username, sess.Email, sess.Picture)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to resolve user account.",
		})
	}
	sess.UserID = user.ID

	sess.AddFlash("success", "You are now logged in as "+sess.Username+".")
	if err := middleware.SaveSession(c, sess); err != nil {
		return err
	}
	return c.HTML(http.StatusOK, welcomeHTML(sess.Username, sess.Picture))
}

func welcomeHTML(username, picture string) string {
	return fmt.Sprintf("<h1>Welcome, %s!</h1><img src=%q class=\"welcome-avatar\">",
		template.HTMLEscapeString(username), picture)
}

// GDisconnect revokes the stored Google access token. The Google session
// fields are cleared only when the revoke endpoint reports success.
func (a *AuthController) GDisconnect(c echo.Context) error {
	sess := middleware.GetSession(c)
	if sess.AccessToken == "" {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Current user not connected.",
		})
	}

	if err := a.Google.RevokeToken(c.Request().Context(), sess.AccessToken); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Failed to revoke token for given user.",
		})
	}

	sess.AccessToken = ""
	sess.GplusID = ""
	sess.Username = ""
	sess.Email = ""
	sess.Picture = ""
	if err := middleware.SaveSession(c, sess); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Successfully disconnected.",
	})
}

// FBDisconnect drops the app permission grant. The session fields are
// cleared regardless of the provider call's outcome.
func (a *AuthController) FBDisconnect(c echo.Context) error {
	sess := middleware.GetSession(c)
	if sess.FacebookID != "" {
		if err := a.Facebook.Revoke(c.Request().Context(), sess.FacebookID, sess.AccessToken); err != nil {
			c.Logger().Warnf("facebook revoke failed: %v", err)
		}
	}

	sess.FacebookID = ""
	sess.AccessToken = ""
	if err := middleware.SaveSession(c, sess); err != nil {
		return err
	}
	return c.HTML(http.StatusOK, "You have been logged out.")
}

// Disconnect logs the user out whatever the provider. Without a provider in
// the session it reports "not logged in" instead of failing.
func (a *AuthController) Disconnect(c echo.Context) error {
	sess := middleware.GetSession(c)
	if sess.Provider == "" {
		return flashAndRedirect(c, "danger", "You were not logged in", "/")
	}

	ctx := c.Request().Context()
	switch sess.Provider {
	case "google":
		if sess.AccessToken != "" {
			if err := a.Google.RevokeToken(ctx, sess.AccessToken); err != nil {
				c.Logger().Warnf("google revoke failed: %v", err)
			}
		}
		sess.GplusID = ""
	case "facebook":
		if sess.FacebookID != "" {
			if err := a.Facebook.Revoke(ctx, sess.FacebookID, sess.AccessToken); err != nil {
				c.Logger().Warnf("facebook revoke failed: %v", err)
			}
		}
		sess.FacebookID = ""
	}

	sess.Provider = ""
	sess.Username = ""
	sess.Email = ""
	sess.Picture = ""
	sess.AccessToken = ""
	sess.UserID = 0

	return flashAndRedirect(c, "success", "You have successfully been logged out.", "/")
}

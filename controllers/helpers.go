package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/laudep/ItemCatalog/middleware"
)

// render pops pending flash messages into the view data and persists the
// session before writing the response body.
func render(c echo.Context, status int, name string, data echo.Map) error {
	sess := middleware.GetSession(c)
	if data == nil {
		data = echo.Map{}
	}
	data["Session"] = sess
	data["Flashes"] = sess.PopFlashes()
	if err := middleware.SaveSession(c, sess); err != nil {
		return err
	}
	return c.Render(status, name, data)
}

// flashAndRedirect queues a flash message and redirects.
func flashAndRedirect(c echo.Context, level, message, target string) error {
	sess := middleware.GetSession(c)
	sess.AddFlash(level, message)
	if err := middleware.SaveSession(c, sess); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, target)
}

// renderUnauthorized is the deliberately low-severity response for a
// non-owner mutation attempt.
func renderUnauthorized(c echo.Context) error {
	return render(c, http.StatusUnauthorized, "unauthorized.html", nil)
}

// paramID parses a numeric path parameter.
func paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/laudep/ItemCatalog/controllers"
)

// RegisterAuthRoutes sets up the login, OAuth callback and disconnect routes.
func RegisterAuthRoutes(e *echo.Echo, ac *controllers.AuthController) {
	e.GET("/login", ac.ShowLogin)
	e.POST("/gconnect", ac.GConnect)
	e.POST("/fbconnect", ac.FBConnect)
	e.GET("/gdisconnect", ac.GDisconnect)
	e.GET("/fbdisconnect", ac.FBDisconnect)
	e.GET("/disconnect", ac.Disconnect)
}

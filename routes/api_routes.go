package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/laudep/ItemCatalog/controllers"
)

// RegisterAPIRoutes sets up the read-only JSON endpoints. Both the
// lowercase and the historical uppercase suffixes are served.
func RegisterAPIRoutes(e *echo.Echo, api *controllers.APIController) {
	g := e.Group("/api/v1")

	g.GET("/catalog/json", api.ShowCatalogJSON)
	g.GET("/catalog/JSON", api.ShowCatalogJSON)
	g.GET("/categories/json", api.ShowCategoriesJSON)
	g.GET("/categories/JSON", api.ShowCategoriesJSON)
	g.GET("/categories/:category_id/item/:item_id/json", api.ShowItemJSON)
	g.GET("/categories/:category_id/item/:item_id/JSON", api.ShowItemJSON)
}

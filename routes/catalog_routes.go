package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/laudep/ItemCatalog/controllers"
	"github.com/laudep/ItemCatalog/middleware"
)

var getPost = []string{http.MethodGet, http.MethodPost}

// RegisterCatalogRoutes sets up the HTML browse and CRUD routes. Mutation
// routes sit behind the login guard; browsing is public.
func RegisterCatalogRoutes(e *echo.Echo, cc *controllers.CategoryController, ic *controllers.ItemController) {
	e.GET("/", cc.ShowCatalog)
	e.GET("/categories", cc.ShowCatalog)
	e.GET("/categories/:category_id", cc.ShowCategoryItems)
	e.GET("/categories/:category_id/items", cc.ShowCategoryItems)
	e.GET("/categories/:category_id/item/:item_id", ic.ShowItem)

	auth := e.Group("", middleware.RequireLogin())
	auth.Match(getPost, "/categories/new", cc.NewCategory)
	auth.Match(getPost, "/categories/:category_id/edit", cc.EditCategory)
	auth.Match(getPost, "/categories/:category_id/delete", cc.DeleteCategory)
	auth.Match(getPost, "/categories/item/new", ic.NewItem)
	auth.Match(getPost, "/categories/:category_id/item/:item_id/edit", ic.EditItem)
	auth.Match(getPost, "/categories/:category_id/item/:item_id/delete", ic.DeleteItem)
}

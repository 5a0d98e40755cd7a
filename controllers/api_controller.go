package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/laudep/ItemCatalog/models"
	"github.com/laudep/ItemCatalog/repositories"
)

// APIController serves the stateless JSON projections of the catalog. No
// authentication, no pagination.
type APIController struct {
	Items      ItemStore
	Categories CategoryStore
}

func NewAPIController(items ItemStore, categories CategoryStore) *APIController {
	return &APIController{
		Items:      items,
		Categories: categories,
	}
}

// ShowCatalogJSON returns every item, newest first.
func (ac *APIController) ShowCatalogJSON(c echo.Context) error {
	items, err := ac.Items.AllDesc(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch items")
	}

	out := make([]models.ItemJSON, len(items))
	for i := range items {
		out[i] = items[i].Serialize()
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"Items": out})
}

// ShowItemJSON returns one item scoped to its category. An item that does
// not exist, or does not belong to the given category, is an explicit 404.
func (ac *APIController) ShowItemJSON(c echo.Context) error {
	categoryID, err := paramID(c, "category_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Item not found")
	}
	itemID, err := paramID(c, "item_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Item not found")
	}

	item, err := ac.Items.ByCategoryAndID(c.Request().Context(), categoryID, itemID)
	if errors.Is(err, repositories.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Item not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch item")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"Catalog_Item": item.Serialize()})
}

// ShowCategoriesJSON returns every category.
func (ac *APIController) ShowCategoriesJSON(c echo.Context) error {
	categories, err := ac.Categories.All(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch categories")
	}

	out := make([]models.CategoryJSON, len(categories))
	for i := range categories {
		out[i] = categories[i].Serialize()
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"Categories": out})
}

package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/laudep/ItemCatalog/middleware"
	"github.com/laudep/ItemCatalog/models"
	"github.com/laudep/ItemCatalog/repositories"
	"github.com/laudep/ItemCatalog/utils"
)

type CategoryController struct {
	Categories CategoryStore
	Items      ItemStore
	Users      UserStore
}

func NewCategoryController(categories CategoryStore, items ItemStore, users UserStore) *CategoryController {
	return &CategoryController{
		Categories: categories,
		Items:      items,
		Users:      users,
	}
}

// ShowCatalog renders the home page: all categories plus the most recently
// added items. Visitors and logged-in users see the same data through
// different templates.
func (cc *CategoryController) ShowCatalog(c echo.Context) error {
	ctx := c.Request().Context()
	categories, err := cc.Categories.All(ctx)
	if err != nil {
		return err
	}
	items, err := cc.Items.AllDesc(ctx)
	if err != nil {
		return err
	}

	name := "public_catalog.html"
	if middleware.GetSession(c).LoggedIn() {
		name = "catalog.html"
	}
	return render(c, http.StatusOK, name, echo.Map{
		"Categories": categories,
		"Items":      items,
		"Quantity":   len(items),
	})
}

// NewCategory shows the creation form on GET and persists on POST. An empty
// name re-renders the form with a warning instead of persisting.
func (cc *CategoryController) NewCategory(c echo.Context) error {
	if c.Request().Method == http.MethodGet {
		return render(c, http.StatusOK, "new_category.html", nil)
	}

	sess := middleware.GetSession(c)
	form := new(models.CategoryForm)
	if err := c.Bind(form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}
	if err := c.Validate(form); err != nil {
		sess.AddFlash("warning", "Category name is required.")
		return render(c, http.StatusOK, "new_category.html", nil)
	}

	category := &models.Category{Name: form.Name, UserID: sess.UserID}
	if err := cc.Categories.Create(c.Request().Context(), category); err != nil {
		return err
	}
	return flashAndRedirect(c, "success", "New category created!", "/")
}

// EditCategory renames a category. Ownership is verified on both the GET
// and the POST.
func (cc *CategoryController) EditCategory(c echo.Context) error {
	sess := middleware.GetSession(c)
	category, err := cc.categoryFromPath(c)
	if err != nil {
		return err
	}
	if !utils.CanMutate(category.UserID, sess) {
		return renderUnauthorized(c)
	}

	if c.Request().Method == http.MethodGet {
		return render(c, http.StatusOK, "edit_category.html", echo.Map{"Category": category})
	}

	name := c.FormValue("name")
	if name == "" {
		sess.AddFlash("warning", "Category name is required.")
		return render(c, http.StatusOK, "edit_category.html", echo.Map{"Category": category})
	}

	category.Name = name
	if err := cc.Categories.Update(c.Request().Context(), category); err != nil {
		return err
	}
	return flashAndRedirect(c, "success", fmt.Sprintf("Successfully edited category %q.", category.Name), "/")
}

// DeleteCategory shows a confirmation on GET and deletes on POST. The FK
// cascade removes the category's items with it.
func (cc *CategoryController) DeleteCategory(c echo.Context) error {
	sess := middleware.GetSession(c)
	category, err := cc.categoryFromPath(c)
	if err != nil {
		return err
	}
	if !utils.CanMutate(category.UserID, sess) {
		return renderUnauthorized(c)
	}

	if c.Request().Method == http.MethodGet {
		return render(c, http.StatusOK, "delete_category.html", echo.Map{"Category": category})
	}

	if err := cc.Categories.Delete(c.Request().Context(), category); err != nil {
		return err
	}
	return flashAndRedirect(c, "success", fmt.Sprintf("%s Successfully Deleted", category.Name), "/")
}

// ShowCategoryItems lists one category's items, newest first, with the
// creator's profile.
func (cc *CategoryController) ShowCategoryItems(c echo.Context) error {
	ctx := c.Request().Context()
	category, err := cc.categoryFromPath(c)
	if err != nil {
		return err
	}

	categories, err := cc.Categories.All(ctx)
	if err != nil {
		return err
	}
	items, err := cc.Items.ByCategoryDesc(ctx, category.ID)
	if err != nil {
		return err
	}

	creator, err := cc.Users.ByID(ctx, category.UserID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	return render(c, http.StatusOK, "catalog_menu.html", echo.Map{
		"Categories": categories,
		"Category":   category,
		"Items":      items,
		"Quantity":   len(items),
		"Creator":    creator,
	})
}

func (cc *CategoryController) categoryFromPath(c echo.Context) (*models.Category, error) {
	id, err := paramID(c, "category_id")
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Category not found")
	}

	category, err := cc.Categories.ByID(c.Request().Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Category not found")
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

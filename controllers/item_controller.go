package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/laudep/ItemCatalog/middleware"
	"github.com/laudep/ItemCatalog/models"
	"github.com/laudep/ItemCatalog/repositories"
	"github.com/laudep/ItemCatalog/utils"
)

type ItemController struct {
	Items      ItemStore
	Categories CategoryStore
	Users      UserStore
}

func NewItemController(items ItemStore, categories CategoryStore, users UserStore) *ItemController {
	return &ItemController{
		Items:      items,
		Categories: categories,
		Users:      users,
	}
}

// ShowItem renders a single item with its category and creator.
func (ic *ItemController) ShowItem(c echo.Context) error {
	ctx := c.Request().Context()
	categoryID, err := paramID(c, "category_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Category not found")
	}
	category, err := ic.Categories.ByID(ctx, categoryID)
	if errors.Is(err, repositories.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Category not found")
	}
	if err != nil {
		return err
	}

	item, err := ic.itemFromPath(c)
	if err != nil {
		return err
	}

	creator, err := ic.Users.ByID(ctx, category.UserID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	return render(c, http.StatusOK, "catalog_menu_item.html", echo.Map{
		"Category": category,
		"Item":     item,
		"Creator":  creator,
	})
}

// NewItem shows the creation form on GET and persists on POST. The form
// lists only existing categories, which is what ties a new item to a valid
// category.
func (ic *ItemController) NewItem(c echo.Context) error {
	ctx := c.Request().Context()
	categories, err := ic.Categories.All(ctx)
	if err != nil {
		return err
	}
	formData := echo.Map{"Categories": categories}

	if c.Request().Method == http.MethodGet {
		return render(c, http.StatusOK, "new_item.html", formData)
	}

	sess := middleware.GetSession(c)
	form := new(models.ItemForm)
	if err := c.Bind(form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}
	if err := c.Validate(form); err != nil {
		sess.AddFlash("warning", "Item name is required.")
		return render(c, http.StatusOK, "new_item.html", formData)
	}
	if !validPrice(form.Price) {
		sess.AddFlash("warning", "Price must be a decimal number.")
		return render(c, http.StatusOK, "new_item.html", formData)
	}

	categoryID, err := strconv.ParseUint(form.Category, 10, 32)
	if err != nil {
		sess.AddFlash("warning", "Please pick a category.")
		return render(c, http.StatusOK, "new_item.html", formData)
	}

	item := &models.Item{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		CategoryID:  uint(categoryID),
		UserID:      sess.UserID,
	}
	if err := ic.Items.Create(ctx, item); err != nil {
		return err
	}
	return flashAndRedirect(c, "success", "New item created.", "/")
}

// EditItem applies a partial update: only the non-empty submitted fields
// overwrite the stored values. Ownership is verified on both GET and POST.
func (ic *ItemController) EditItem(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.GetSession(c)
	item, err := ic.itemFromPath(c)
	if err != nil {
		return err
	}
	if !utils.CanMutate(item.UserID, sess) {
		return renderUnauthorized(c)
	}

	categories, err := ic.Categories.All(ctx)
	if err != nil {
		return err
	}
	formData := echo.Map{"Item": item, "Categories": categories}

	if c.Request().Method == http.MethodGet {
		return render(c, http.StatusOK, "edit_item.html", formData)
	}

	if name := c.FormValue("name"); name != "" {
		item.Name = name
	}
	if description := c.FormValue("description"); description != "" {
		item.Description = description
	}
	if price := c.FormValue("price"); price != "" {
		if !validPrice(price) {
			sess.AddFlash("warning", "Price must be a decimal number.")
			return render(c, http.StatusOK, "edit_item.html", formData)
		}
		item.Price = price
	}
	if category := c.FormValue("category"); category != "" {
		categoryID, err := strconv.ParseUint(category, 10, 32)
		if err != nil {
			sess.AddFlash("warning", "Please pick a category.")
			return render(c, http.StatusOK, "edit_item.html", formData)
		}
		item.CategoryID = uint(categoryID)
	}

	if err := ic.Items.Update(ctx, item); err != nil {
		return err
	}
	return flashAndRedirect(c, "success", "Catalog item updated!", "/")
}

// DeleteItem shows a confirmation on GET and deletes on POST.
func (ic *ItemController) DeleteItem(c echo.Context) error {
	sess := middleware.GetSession(c)
	item, err := ic.itemFromPath(c)
	if err != nil {
		return err
	}
	if !utils.CanMutate(item.UserID, sess) {
		return renderUnauthorized(c)
	}

	if c.Request().Method == http.MethodGet {
		return render(c, http.StatusOK, "delete_item.html", echo.Map{"Item": item})
	}

	if err := ic.Items.Delete(c.Request().Context(), item); err != nil {
		return err
	}
	return flashAndRedirect(c, "success", "Catalog Item Successfully Deleted", "/")
}

func (ic *ItemController) itemFromPath(c echo.Context) (*models.Item, error) {
	id, err := paramID(c, "item_id")
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Item not found")
	}

	item, err := ic.Items.ByID(c.Request().Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Item not found")
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// validPrice accepts an empty price or any decimal-formatted text. The raw
// text is what gets stored; nothing is normalized.
func validPrice(price string) bool {
	if price == "" {
		return true
	}
	_, err := decimal.NewFromString(price)
	return err == nil
}

package controllers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/laudep/ItemCatalog/middleware"
	"github.com/laudep/ItemCatalog/models"
)

func TestShowCatalogProjection(t *testing.T) {
	testCases := []struct {
		name         string
		session      *models.Session
		wantContains string
		wantAbsent   string
	}{
		{
			name:         "anonymous visitor gets the public view",
			session:      &models.Session{},
			wantContains: "Catalog",
			wantAbsent:   "Add category",
		},
		{
			name:         "authenticated user gets the editing view",
			session:      &models.Session{UserID: 1, Username: "alice"},
			wantContains: "Add category",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho(t)
			categories := &mockCategoryStore{categories: []models.Category{{ID: 1, Name: "Snowboards", UserID: 1}}}
			items := &mockItemStore{items: []models.Item{{ID: 3, Name: "Goggles", CategoryID: 1, UserID: 1}}}
			cc := NewCategoryController(categories, items, &mockUserStore{})

			c, rec := newFormContext(e, http.MethodGet, "/", "", tc.session)
			assert.NoError(t, cc.ShowCatalog(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantContains)
			if tc.wantAbsent != "" {
				assert.NotContains(t, rec.Body.String(), tc.wantAbsent)
			}
		})
	}
}

func TestNewCategory(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		wantCode   int
		wantSaved  bool
		wantInBody string
	}{
		{
			name:      "valid name persists and redirects",
			body:      "name=Snowboards",
			wantCode:  http.StatusFound,
			wantSaved: true,
		},
		{
			name:       "empty name re-renders the form with a warning",
			body:       "name=",
			wantCode:   http.StatusOK,
			wantSaved:  false,
			wantInBody: "Category name is required.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho(t)
			categories := &mockCategoryStore{}
			cc := NewCategoryController(categories, &mockItemStore{}, &mockUserStore{})

			sess := &models.Session{UserID: 7}
			c, rec := newFormContext(e, http.MethodPost, "/categories/new", tc.body, sess)
			assert.NoError(t, cc.NewCategory(c))
			assert.Equal(t, tc.wantCode, rec.Code)

			if tc.wantSaved {
				assert.NotNil(t, categories.created)
				assert.Equal(t, "Snowboards", categories.created.Name)
				assert.Equal(t, uint(7), categories.created.UserID)
			} else {
				assert.Nil(t, categories.created)
			}
			if tc.wantInBody != "" {
				assert.Contains(t, rec.Body.String(), tc.wantInBody)
			}
		})
	}
}

func TestEditCategoryOwnership(t *testing.T) {
	testCases := []struct {
		name        string
		session     *models.Session
		body        string
		wantCode    int
		wantUpdated bool
	}{
		{
			name:        "owner renames the category",
			session:     &models.Session{UserID: 1},
			body:        "name=Skis",
			wantCode:    http.StatusFound,
			wantUpdated: true,
		},
		{
			name:        "non-owner is rejected without touching the record",
			session:     &models.Session{UserID: 2},
			body:        "name=Skis",
			wantCode:    http.StatusUnauthorized,
			wantUpdated: false,
		},
		{
			name:        "empty name re-renders without persisting",
			session:     &models.Session{UserID: 1},
			body:        "name=",
			wantCode:    http.StatusOK,
			wantUpdated: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho(t)
			categories := &mockCategoryStore{categories: []models.Category{{ID: 5, Name: "Snowboards", UserID: 1}}}
			cc := NewCategoryController(categories, &mockItemStore{}, &mockUserStore{})

			c, rec := newFormContext(e, http.MethodPost, "/categories/5/edit", tc.body, tc.session)
			c.SetParamNames("category_id")
			c.SetParamValues("5")
			assert.NoError(t, cc.EditCategory(c))
			assert.Equal(t, tc.wantCode, rec.Code)

			if tc.wantUpdated {
				assert.NotNil(t, categories.updated)
				assert.Equal(t, "Skis", categories.updated.Name)
			} else {
				assert.Nil(t, categories.updated)
			}
		})
	}
}

func TestDeleteCategory(t *testing.T) {
	t.Run("GET shows the confirmation view", func(t *testing.T) {
		e := newTestEcho(t)
		categories := &mockCategoryStore{categories: []models.Category{{ID: 5, Name: "Snowboards", UserID: 1}}}
		cc := NewCategoryController(categories, &mockItemStore{}, &mockUserStore{})

		c, rec := newFormContext(e, http.MethodGet, "/categories/5/delete", "", &models.Session{UserID: 1})
		c.SetParamNames("category_id")
		c.SetParamValues("5")
		assert.NoError(t, cc.DeleteCategory(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Delete Snowboards?")
		assert.Nil(t, categories.deleted)
	})

	t.Run("POST by the owner deletes and redirects", func(t *testing.T) {
		e := newTestEcho(t)
		categories := &mockCategoryStore{categories: []models.Category{{ID: 5, Name: "Snowboards", UserID: 1}}}
		cc := NewCategoryController(categories, &mockItemStore{}, &mockUserStore{})

		c, rec := newFormContext(e, http.MethodPost, "/categories/5/delete", "confirm=1", &models.Session{UserID: 1})
		c.SetParamNames("category_id")
		c.SetParamValues("5")
		assert.NoError(t, cc.DeleteCategory(c))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.NotNil(t, categories.deleted)
		assert.Equal(t, uint(5), categories.deleted.ID)
	})

	t.Run("POST by a non-owner is rejected", func(t *testing.T) {
		e := newTestEcho(t)
		categories := &mockCategoryStore{categories: []models.Category{{ID: 5, Name: "Snowboards", UserID: 1}}}
		cc := NewCategoryController(categories, &mockItemStore{}, &mockUserStore{})

		c, rec := newFormContext(e, http.MethodPost, "/categories/5/delete", "confirm=1", &models.Session{UserID: 9})
		c.SetParamNames("category_id")
		c.SetParamValues("5")
		assert.NoError(t, cc.DeleteCategory(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, categories.deleted)
	})
}

func TestEditCategoryUnknownIDIs404(t *testing.T) {
	e := newTestEcho(t)
	cc := NewCategoryController(&mockCategoryStore{}, &mockItemStore{}, &mockUserStore{})

	c, _ := newFormContext(e, http.MethodGet, "/categories/99/edit", "", &models.Session{UserID: 1})
	c.SetParamNames("category_id")
	c.SetParamValues("99")

	err := cc.EditCategory(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestAnonymousMutationRedirectsToLogin(t *testing.T) {
	e := newTestEcho(t)
	categories := &mockCategoryStore{}
	cc := NewCategoryController(categories, &mockItemStore{}, &mockUserStore{})

	guarded := middleware.RequireLogin()(cc.NewCategory)
	c, rec := newFormContext(e, http.MethodPost, "/categories/new", "name=Sneaky", &models.Session{})

	assert.NoError(t, guarded(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	assert.Nil(t, categories.created)
}

package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/laudep/ItemCatalog/middleware"
	"github.com/laudep/ItemCatalog/models"
	"github.com/laudep/ItemCatalog/repositories"
	"github.com/laudep/ItemCatalog/templates"
)

// --- Mock stores ---

type mockUserStore struct {
	users     []models.User
	nextID    uint
	created   *models.User
	findCalls int
}

func (m *mockUserStore) ByID(ctx context.Context, id uint) (*models.User, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			user := m.users[i]
			return &user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserStore) FindOrCreateByEmail(ctx context.Context, name, email, picture string) (*models.User, error) {
	m.findCalls++
	for i := range m.users {
		if m.users[i].Email == email {
			user := m.users[i]
			return &user, nil
		}
	}
	if m.nextID == 0 {
		m.nextID = 1
	}
	user := models.User{ID: m.nextID, Name: name, Email: email, Picture: picture}
	m.users = append(m.users, user)
	m.created = &user
	return &user, nil
}

type mockCategoryStore struct {
	categories []models.Category
	created    *models.Category
	updated    *models.Category
	deleted    *models.Category
	err        error
}

func (m *mockCategoryStore) All(ctx context.Context) ([]models.Category, error) {
	return m.categories, m.err
}

func (m *mockCategoryStore) ByID(ctx context.Context, id uint) (*models.Category, error) {
	for i := range m.categories {
		if m.categories[i].ID == id {
			category := m.categories[i]
			return &category, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockCategoryStore) Create(ctx context.Context, category *models.Category) error {
	if m.err != nil {
		return m.err
	}
	m.created = category
	return nil
}

func (m *mockCategoryStore) Update(ctx context.Context, category *models.Category) error {
	if m.err != nil {
		return m.err
	}
	m.updated = category
	return nil
}

func (m *mockCategoryStore) Delete(ctx context.Context, category *models.Category) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = category
	return nil
}

type mockItemStore struct {
	items   []models.Item
	created *models.Item
	updated *models.Item
	deleted *models.Item
	err     error
}

func (m *mockItemStore) AllDesc(ctx context.Context) ([]models.Item, error) {
	return m.items, m.err
}

func (m *mockItemStore) ByCategoryDesc(ctx context.Context, categoryID uint) ([]models.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Item
	for _, item := range m.items {
		if item.CategoryID == categoryID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockItemStore) ByID(ctx context.Context, id uint) (*models.Item, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			item := m.items[i]
			return &item, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockItemStore) ByCategoryAndID(ctx context.Context, categoryID, itemID uint) (*models.Item, error) {
	for i := range m.items {
		if m.items[i].ID == itemID && m.items[i].CategoryID == categoryID {
			item := m.items[i]
			return &item, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockItemStore) Create(ctx context.Context, item *models.Item) error {
	if m.err != nil {
		return m.err
	}
	m.created = item
	return nil
}

func (m *mockItemStore) Update(ctx context.Context, item *models.Item) error {
	if m.err != nil {
		return m.err
	}
	m.updated = item
	return nil
}

func (m *mockItemStore) Delete(ctx context.Context, item *models.Item) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = item
	return nil
}

// --- Test plumbing ---

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	t.Setenv("SESSION_SECRET", "test-secret")

	e := echo.New()
	e.Renderer = templates.NewRenderer()
	e.Validator = &testValidator{validate: validator.New()}
	return e
}

// newFormContext builds an echo.Context for a form submission (or a plain
// GET when body is empty) with the given session attached.
func newFormContext(e *echo.Echo, method, target, body string, sess *models.Session) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess == nil {
		sess = &models.Session{}
	}
	middleware.SetSession(c, sess)
	return c, rec
}

package controllers

import (
	"context"

	"github.com/laudep/ItemCatalog/models"
)

// Store interfaces are satisfied by the repositories package. Controllers
// depend on them so tests can substitute in-memory mocks.

type UserStore interface {
	ByID(ctx context.Context, id uint) (*models.User, error)
	FindOrCreateByEmail(ctx context.Context, name, email, picture string) (*models.User, error)
}

type CategoryStore interface {
	All(ctx context.Context) ([]models.Category, error)
	ByID(ctx context.Context, id uint) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, category *models.Category) error
}

type ItemStore interface {
	AllDesc(ctx context.Context) ([]models.Item, error)
	ByCategoryDesc(ctx context.Context, categoryID uint) ([]models.Item, error)
	ByID(ctx context.Context, id uint) (*models.Item, error)
	ByCategoryAndID(ctx context.Context, categoryID, itemID uint) (*models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, item *models.Item) error
}

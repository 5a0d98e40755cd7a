package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/laudep/ItemCatalog/models"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// AllDesc returns every item, newest first.
func (r *ItemRepository) AllDesc(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).Order("id desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ByCategoryDesc returns the items of one category, newest first.
func (r *ItemRepository) ByCategoryDesc(ctx context.Context, categoryID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id desc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepository) ByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// ByCategoryAndID returns the item only when it belongs to the given
// category.
func (r *ItemRepository) ByCategoryAndID(ctx context.Context, categoryID, itemID uint) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		First(&item, itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *ItemRepository) Delete(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Delete(item).Error
}

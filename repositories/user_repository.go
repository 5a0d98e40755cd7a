package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/laudep/ItemCatalog/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// ByID fetches a user by primary key.
func (r *UserRepository) ByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindOrCreateByEmail resolves the local user for an OAuth identity. The
// unique index on email makes the create race-safe: a concurrent insert for
// the same address surfaces as a duplicate-key error and the winning row is
// re-read instead.
func (r *UserRepository) FindOrCreateByEmail(ctx context.Context, name, email, picture string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{Name: name, Email: email, Picture: picture}
	err = r.db.WithContext(ctx).Create(&user).Error
	if err == nil {
		return &user, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		var existing models.User
		if err := r.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	return nil, err
}

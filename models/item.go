package models

// Item is a single catalog entry. Price is stored as submitted text; the
// currency symbol is added only at serialization time.
type Item struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"size:80;not null" json:"name"`
	Description string   `gorm:"size:250" json:"description"`
	Price       string   `gorm:"size:8" json:"price"`
	CategoryID  uint     `gorm:"not null;index" json:"category_id"`
	Category    Category `gorm:"foreignKey:CategoryID" json:"-"`
	UserID      uint     `gorm:"index" json:"user_id"`
	User        User     `gorm:"foreignKey:UserID" json:"-"`
}

func (i *Item) TableName() string {
	return "catalog_item"
}

// ItemJSON is the shape exposed by the read API.
type ItemJSON struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	CategoryID  uint   `json:"category_id"`
	UserID      uint   `json:"user_id"`
}

// Serialize returns the item in its API projection, with the currency
// symbol prepended to the stored price text.
func (i *Item) Serialize() ItemJSON {
	return ItemJSON{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       "$" + i.Price,
		CategoryID:  i.CategoryID,
		UserID:      i.UserID,
	}
}

package models

// Category groups catalog items. Only the creating user may rename or
// delete it; deleting a category cascades to its items at the FK level.
type Category struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"not null" json:"name"`
	UserID uint   `gorm:"index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Items  []Item `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Category) TableName() string {
	return "category"
}

// CategoryJSON is the shape exposed by the read API.
type CategoryJSON struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Serialize returns the category in its API projection.
func (c *Category) Serialize() CategoryJSON {
	return CategoryJSON{
		ID:   c.ID,
		Name: c.Name,
	}
}

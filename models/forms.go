// models/forms.go

package models

// CategoryForm is the create/edit form payload for categories.
type CategoryForm struct {
	Name string `form:"name" validate:"required"`
}

// ItemForm is the create form payload for items. The category field holds
// the id of an existing category, as listed by the form itself.
type ItemForm struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description"`
	Price       string `form:"price"`
	Category    string `form:"category"`
}

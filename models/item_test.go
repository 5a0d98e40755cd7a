package models

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemSerialize(t *testing.T) {
	item := &Item{
		ID:          3,
		Name:        "Goggles",
		Description: "Anti-fog",
		Price:       "1.50",
		CategoryID:  1,
		UserID:      4,
	}

	got := item.Serialize()
	assert.Equal(t, ItemJSON{
		ID:          3,
		Name:        "Goggles",
		Description: "Anti-fog",
		Price:       "$1.50",
		CategoryID:  1,
		UserID:      4,
	}, got)
}

func TestItemSerializeKeepsSubmittedPriceText(t *testing.T) {
	// The stored text goes out verbatim behind the currency symbol; "1.50"
	// must not collapse to "1.5".
	item := &Item{Price: "1.50"}
	assert.Equal(t, "$1.50", item.Serialize().Price)
}

func TestCategoryItemsCascadeOnDelete(t *testing.T) {
	field, ok := reflect.TypeOf(Category{}).FieldByName("Items")
	require.True(t, ok)
	assert.Contains(t, field.Tag.Get("gorm"), "OnDelete:CASCADE")
}

func TestSessionFlashQueue(t *testing.T) {
	sess := &Session{}
	sess.AddFlash("success", "New category created.")
	sess.AddFlash("warning", "Price must be a decimal number.")

	flashes := sess.PopFlashes()
	require.Len(t, flashes, 2)
	assert.Equal(t, Flash{Message: "New category created.", Level: "success"}, flashes[0])
	assert.Equal(t, Flash{Message: "Price must be a decimal number.", Level: "warning"}, flashes[1])

	assert.Empty(t, sess.PopFlashes())
}

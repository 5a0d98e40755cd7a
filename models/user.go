package models

// User is an identity record created on first successful OAuth login for a
// given email address. No exposed operation updates or deletes it.
type User struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"uniqueIndex;not null" json:"email"`
	Picture string `json:"picture"`
}

// TableName overrides the default pluralized table name.
func (u *User) TableName() string {
	return "user"
}

// Response is the standard JSON envelope for API-style replies.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

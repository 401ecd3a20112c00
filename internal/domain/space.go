package domain

import "time"

// Space is a single testimonial collector owned by exactly one user.
// Slug and PublicURL are assigned on creation and never change afterwards.
type Space struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      int64     `json:"user_id" gorm:"index"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug" gorm:"uniqueIndex"`
	PublicURL   string    `json:"public_url"`
	RedirectURL string    `json:"redirect_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

package domain

import "time"

// Review is an anonymous testimonial submitted against a space's public slug.
// Only the Liked flag is mutable after creation, and only by the space owner.
type Review struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	SpaceID     int64     `json:"space_id" gorm:"index"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email,omitempty"`
	Rating      int       `json:"rating"`
	Text        string    `json:"text"`
	Liked       bool      `json:"liked"`
	CreatedAt   time.Time `json:"created_at"`
}

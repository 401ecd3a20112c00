package review

import (
	"time"

	"testiflow/internal/domain"
)

type SubmitReviewRequest struct {
	AuthorName  string `json:"authorName" binding:"required"`
	AuthorEmail string `json:"authorEmail" binding:"omitempty,email"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Text        string `json:"text" binding:"required"`
}

// ReviewResponse carries the parent space by id only; the submitter's
// review id is never returned on the public path.
type ReviewResponse struct {
	ID          int64     `json:"id"`
	SpaceID     int64     `json:"spaceId"`
	AuthorName  string    `json:"authorName"`
	AuthorEmail string    `json:"authorEmail,omitempty"`
	Rating      int       `json:"rating"`
	Text        string    `json:"text"`
	Liked       bool      `json:"liked"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToResponse(rv *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:          rv.ID,
		SpaceID:     rv.SpaceID,
		AuthorName:  rv.AuthorName,
		AuthorEmail: rv.AuthorEmail,
		Rating:      rv.Rating,
		Text:        rv.Text,
		Liked:       rv.Liked,
		CreatedAt:   rv.CreatedAt,
	}
}

func ToResponseList(reviews []domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, ToResponse(&reviews[i]))
	}
	return out
}

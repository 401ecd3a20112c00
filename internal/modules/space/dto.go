package space

import "testiflow/internal/domain"

type UpsertSpaceRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	RedirectURL string `json:"redirectUrl" validate:"required,url"`
}

// SpaceResponse serializes the owner by id only, never as a nested
// object, so the JSON can never recurse through User -> Space -> User.
type SpaceResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	PublicURL   string `json:"publicUrl"`
	RedirectURL string `json:"redirectUrl"`
	UserID      int64  `json:"userId"`
}

func ToResponse(sp *domain.Space) SpaceResponse {
	return SpaceResponse{
		ID:          sp.ID,
		Name:        sp.Name,
		Slug:        sp.Slug,
		PublicURL:   sp.PublicURL,
		RedirectURL: sp.RedirectURL,
		UserID:      sp.UserID,
	}
}

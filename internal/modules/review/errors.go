package review

import "errors"

var (
	ErrSpaceNotFound  = errors.New("space not found")
	ErrReviewNotFound = errors.New("review not found")
	ErrForbidden      = errors.New("caller does not own this space")
)

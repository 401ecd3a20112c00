package space

import "errors"

var (
	ErrOwnerNotFound = errors.New("owner not found")
	ErrNotFound      = errors.New("space not found")
	ErrSlugExhausted = errors.New("could not allocate a unique slug")
)

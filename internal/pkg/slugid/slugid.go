package slugid

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Make normalizes a human-entered name into a URL-safe base slug:
// lowercase, transliterated, hyphen-separated, no reserved characters.
func Make(name string) string {
	s := slug.Make(name)
	if s == "" {
		s = "space"
	}
	return s
}

// Allocate returns the first free slug derived from base, probing
// base, base-1, base-2, ... against the taken predicate. It is a pure
// function over the predicate and keeps no state of its own; global
// uniqueness is ultimately enforced by the storage layer's unique
// index, with the caller retrying on a write conflict.
func Allocate(base string, taken func(string) (bool, error)) (string, error) {
	candidate := base
	for counter := 1; ; counter++ {
		used, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

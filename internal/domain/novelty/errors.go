package novelty

import "errors"

var (
	ErrNoveltyNotFound = errors.New("novelty not found")
	ErrUnknownType     = errors.New("unknown novelty type")
)

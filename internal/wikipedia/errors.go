package wikipedia

import (
	"errors"
	"fmt"
)

// ErrPageNotFound indicates the requested article does not exist.
var ErrPageNotFound = errors.New("wikipedia page not found")

// APIError represents an availability or transport failure of the MediaWiki
// API, as opposed to a content problem with a page that was fetched fine.
type APIError struct {
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wikipedia API: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("wikipedia API: %s", e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

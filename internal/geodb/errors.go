package geodb

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when every attempt within the attempt budget was
// answered with 404.
var ErrNotFound = errors.New("database not found")

// StatusError is returned when the server answers with a status that is
// neither a success nor a 404.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected server response from %s: %s", e.URL, e.Status)
}

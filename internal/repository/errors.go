package repository

import "errors"

// ErrNotFound indicates a document was not located.
var ErrNotFound = errors.New("repository: not found")

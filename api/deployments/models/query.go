package models

import (
	"fmt"
	"strings"
)

// SortDirection ordering of documents by creation time
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"

	maxTop = 1000
)

// DocumentQuery restricts a listing of documents
type DocumentQuery struct {
	// Top max number of documents, nil means all
	Top *int
	// SortDirection by created, defaults to descending
	SortDirection SortDirection
}

// NewDocumentQuery builds a validated query from raw request values
func NewDocumentQuery(top *int, sortDirection string) (DocumentQuery, error) {
	query := DocumentQuery{Top: top, SortDirection: SortDescending}

	if top != nil && (*top < 1 || *top > maxTop) {
		return DocumentQuery{}, InvalidQuery(fmt.Sprintf("top must be between 1 and %d", maxTop))
	}

	switch SortDirection(strings.ToLower(strings.TrimSpace(sortDirection))) {
	case "", SortDescending:
	case SortAscending:
		query.SortDirection = SortAscending
	default:
		return DocumentQuery{}, InvalidQuery(fmt.Sprintf("sortDirection %s is not supported", sortDirection))
	}

	return query, nil
}

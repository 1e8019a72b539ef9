package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewDocumentQuery(t *testing.T) {
	top := 10
	query, err := NewDocumentQuery(&top, "ASC")
	require.NoError(t, err)
	assert.Equal(t, SortAscending, query.SortDirection)
	assert.Equal(t, 10, *query.Top)

	query, err = NewDocumentQuery(nil, "")
	require.NoError(t, err)
	assert.Equal(t, SortDescending, query.SortDirection)
	assert.Nil(t, query.Top)
}

func Test_NewDocumentQuery_Invalid(t *testing.T) {
	zero, tooMany := 0, 1001
	_, err := NewDocumentQuery(&zero, "")
	assert.Error(t, err)
	_, err = NewDocumentQuery(&tooMany, "")
	assert.Error(t, err)
	_, err = NewDocumentQuery(nil, "newest")
	assert.Error(t, err)
}

package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textex/textex/internal/app/models"
)

func TestBuildSearchQueryNoFilters(t *testing.T) {
	r := NewBookRepository(nil)

	sql, args, err := r.buildSearchQuery(models.BookSearchFilter{}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, sql, "WHERE")
	assert.Contains(t, sql, "ORDER BY isbn ASC")
	assert.Empty(t, args)
}

func TestBuildSearchQueryStringFilters(t *testing.T) {
	r := NewBookRepository(nil)

	filter := models.BookSearchFilter{
		ISBN:      "978",
		Name:      "algorithms",
		Authors:   "cormen",
		Publisher: "mit",
	}
	sql, args, err := r.buildSearchQuery(filter).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "isbn ILIKE $")
	assert.Contains(t, sql, "name ILIKE $")
	assert.Contains(t, sql, "authors ILIKE $")
	assert.Contains(t, sql, "publisher ILIKE $")
	assert.ElementsMatch(t, []interface{}{"%978%", "%algorithms%", "%cormen%", "%mit%"}, args)
}

func TestBuildSearchQueryNumericBounds(t *testing.T) {
	r := NewBookRepository(nil)

	edition := 2
	price := 50.0
	filter := models.BookSearchFilter{
		EditionAtLeast: &edition,
		PriceAtMost:    &price,
	}
	sql, args, err := r.buildSearchQuery(filter).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "edition >= $")
	assert.Contains(t, sql, "price <= $")
	assert.ElementsMatch(t, []interface{}{2, 50.0}, args)
}

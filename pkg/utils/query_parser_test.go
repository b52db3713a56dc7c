package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterFromQuery(t *testing.T) {
	values, err := url.ParseQuery("search=осциллограф&sort[name]=desc&filter[category]=electronics&limit=20&page=2&withPagination=true")
	require.NoError(t, err)

	filter := ParseFilterFromQuery(values)

	assert.Equal(t, "осциллограф", filter.Search)
	assert.Equal(t, "desc", filter.Sort["name"])
	assert.Equal(t, "electronics", filter.Filter["category"])
	assert.Equal(t, 20, filter.Limit)
	assert.Equal(t, 2, filter.Page)
	assert.Equal(t, 20, filter.Offset)
	assert.True(t, filter.WithPagination)
}

func TestParseFilterFromQuery_Defaults(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 0, filter.Offset)
	assert.False(t, filter.WithPagination)
}

func TestParseFilterFromQuery_LimitCapped(t *testing.T) {
	values := url.Values{"limit": {"9000"}}
	filter := ParseFilterFromQuery(values)
	assert.Equal(t, MaxLimit, filter.Limit)
}

// term — синоним search, так его шлёт фронтенд поиска по каталогу.
func TestParseFilterFromQuery_TermAlias(t *testing.T) {
	values := url.Values{"term": {"генератор"}}
	filter := ParseFilterFromQuery(values)
	assert.Equal(t, "генератор", filter.Search)
}

func TestParseFacetsFromQuery(t *testing.T) {
	values, err := url.ParseQuery("filter[category]=electronics,optics&filter[brand]=Tektronix&term=x")
	require.NoError(t, err)

	facets := ParseFacetsFromQuery(values)

	assert.Equal(t, []string{"electronics", "optics"}, facets["category"])
	assert.Equal(t, []string{"Tektronix"}, facets["brand"])
	assert.NotContains(t, facets, "term")
}

package catalog

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopeasy/storefront-service/internal/app/storefront/domain"
)

func names(products []*domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestApply_EmptyCriteriaSortsByNameKeepingEverything(t *testing.T) {
	products := SampleProducts()

	got := Apply(products, Criteria{SortBy: SortByName})

	require.Len(t, got, len(products))
	assert.Equal(t, []string{
		"Classic T-Shirt",
		"Coffee Maker",
		"Designer Jeans",
		"Gaming Laptop",
		"JavaScript Guide",
		"Smart Watch",
		"Smartphone Pro",
		"Wireless Headphones",
	}, names(got))
}

func TestApply_CategoryExactMatch(t *testing.T) {
	got := Apply(SampleProducts(), Criteria{Category: "electronics"})

	require.NotEmpty(t, got)
	for _, p := range got {
		assert.Equal(t, "electronics", p.Category)
	}
	assert.Len(t, got, 4)
}

func TestApply_SearchMatchesNameOrDescriptionCaseInsensitive(t *testing.T) {
	products := SampleProducts()

	byName := Apply(products, Criteria{Search: "GUIDE"})
	require.Len(t, byName, 1)
	assert.Equal(t, "JavaScript Guide", byName[0].Name)

	byDescription := Apply(products, Criteria{Search: "comfortable"})
	require.Len(t, byDescription, 1)
	assert.Equal(t, "Classic T-Shirt", byDescription[0].Name)
}

func TestApply_MaxPriceIsInclusive(t *testing.T) {
	got := Apply(SampleProducts(), Criteria{MaxPrice: decimal.RequireFromString("89.99")})

	for _, p := range got {
		assert.True(t, p.Price.LessThanOrEqual(decimal.RequireFromString("89.99")))
	}
	// Coffee Maker and Designer Jeans sit exactly on the bound.
	assert.Contains(t, names(got), "Coffee Maker")
	assert.Contains(t, names(got), "Designer Jeans")
}

func TestApply_SortPriceHighDescending(t *testing.T) {
	products := []*domain.Product{
		{ID: 1, Name: "a", Price: decimal.RequireFromString("699.99")},
		{ID: 2, Name: "b", Price: decimal.RequireFromString("199.99")},
		{ID: 3, Name: "c", Price: decimal.RequireFromString("29.99")},
	}

	got := Apply(products, Criteria{SortBy: SortByPriceHigh})

	require.Len(t, got, 3)
	assert.Equal(t, "699.99", got[0].Price.String())
	assert.Equal(t, "199.99", got[1].Price.String())
	assert.Equal(t, "29.99", got[2].Price.String())
}

func TestApply_SortPriceLowAscending(t *testing.T) {
	got := Apply(SampleProducts(), Criteria{SortBy: SortByPriceLow})

	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Price.LessThanOrEqual(got[i].Price))
	}
}

func TestApply_SortRatingDescending(t *testing.T) {
	got := Apply(SampleProducts(), Criteria{SortBy: SortByRating})

	require.NotEmpty(t, got)
	assert.Equal(t, "JavaScript Guide", got[0].Name) // 4.8
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Rating, got[i].Rating)
	}
}

func TestApply_UnknownSortKeepsInputOrder(t *testing.T) {
	products := SampleProducts()

	got := Apply(products, Criteria{SortBy: "popularity"})

	assert.Equal(t, names(products), names(got))
}

func TestApply_LeavesInputUntouched(t *testing.T) {
	products := SampleProducts()
	before := names(products)

	Apply(products, Criteria{Search: "laptop", SortBy: SortByPriceHigh})

	assert.Equal(t, before, names(products))
}

func TestApply_FiltersCompose(t *testing.T) {
	got := Apply(SampleProducts(), Criteria{
		Category: "electronics",
		MaxPrice: decimal.RequireFromString("300"),
		SortBy:   SortByPriceLow,
	})

	assert.Equal(t, []string{"Wireless Headphones", "Smart Watch"}, names(got))
}

func TestCriteriaFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("category", "books")
	values.Set("search", "guide")
	values.Set("maxPrice", "60")
	values.Set("sort", "price-high")

	c := CriteriaFromQuery(values)

	assert.Equal(t, "books", c.Category)
	assert.Equal(t, "guide", c.Search)
	assert.True(t, c.MaxPrice.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, SortByPriceHigh, c.SortBy)
}

func TestCriteriaFromQuery_Defaults(t *testing.T) {
	c := CriteriaFromQuery(url.Values{})

	assert.Empty(t, c.Category)
	assert.Empty(t, c.Search)
	assert.False(t, c.MaxPrice.IsPositive())
	assert.Equal(t, SortByName, c.SortBy)
}

func TestCriteriaFromQuery_MalformedMaxPriceIgnored(t *testing.T) {
	values := url.Values{}
	values.Set("maxPrice", "cheap")

	c := CriteriaFromQuery(values)

	assert.True(t, c.MaxPrice.IsZero())
}

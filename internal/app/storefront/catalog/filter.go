package catalog

import (
	"net/url"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/shopeasy/storefront-service/internal/app/storefront/domain"
)

// SortOrder selects the ordering applied after filtering.
type SortOrder string

const (
	SortByName      SortOrder = "name"
	SortByPriceLow  SortOrder = "price-low"
	SortByPriceHigh SortOrder = "price-high"
	SortByRating    SortOrder = "rating"
)

// Criteria holds the listing view's current filter selection. The zero
// value matches everything and keeps catalog order.
type Criteria struct {
	// Search keeps products whose name or description contains the
	// term, case-insensitively. Empty disables the filter.
	Search string

	// Category keeps products whose category matches exactly.
	// Empty disables the filter.
	Category string

	// MaxPrice is an inclusive upper bound on the price.
	// A non-positive value means no limit.
	MaxPrice decimal.Decimal

	// SortBy orders the result. An unrecognized value keeps the
	// filtered products in their input order.
	SortBy SortOrder
}

// CriteriaFromQuery seeds a Criteria from listing view URL query
// parameters. The category parameter is the primary contract; the
// remaining fields are parsed tolerantly and fall back to their
// defaults on malformed input.
func CriteriaFromQuery(values url.Values) Criteria {
	c := Criteria{
		Search:   values.Get("search"),
		Category: values.Get("category"),
		SortBy:   SortByName,
	}
	if raw := values.Get("maxPrice"); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			c.MaxPrice = d
		}
	}
	if raw := values.Get("sort"); raw != "" {
		c.SortBy = SortOrder(raw)
	}
	return c
}

// Apply runs the filter pipeline over the given products: search, then
// category, then max price, then sort. It is pure; the input slice is
// left untouched and a fresh slice is returned.
func Apply(products []*domain.Product, c Criteria) []*domain.Product {
	search := strings.ToLower(strings.TrimSpace(c.Search))
	out := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if c.Category != "" && p.Category != c.Category {
			continue
		}
		if c.MaxPrice.IsPositive() && p.Price.GreaterThan(c.MaxPrice) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, c.SortBy)
	return out
}

func sortProducts(products []*domain.Product, by SortOrder) {
	switch by {
	case SortByName:
		coll := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return coll.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortByPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortByPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case SortByRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	}
}

package catalog

import (
	"strconv"
	"strings"

	"prepcat/internal/domain/entity"
)

// PriceBucket is one of the five discrete price-range filters.
type PriceBucket string

const (
	PriceBucketAny      PriceBucket = ""
	PriceBucketUnder50  PriceBucket = "0-50"
	PriceBucket50To100  PriceBucket = "50-100"
	PriceBucket100To500 PriceBucket = "100-500"
	PriceBucketOver500  PriceBucket = "500+"
)

// Criteria is the full filter input. Zero values mean "no constraint", never
// "match nothing".
type Criteria struct {
	// Search matches case-insensitively against product name, SKU, ASIN and
	// resolved supplier name.
	Search string `json:"search"`

	// TagTokens are tri-state tag filters: a token prefixed with "!" excludes,
	// anything else includes.
	TagTokens []string `json:"tag_tokens"`

	// SupplierTokens follow the same convention, keyed on exact supplier id.
	SupplierTokens []string `json:"supplier_tokens"`

	// PriceBucket selects one discrete price range.
	PriceBucket PriceBucket `json:"price_bucket"`
}

// Filter applies all criteria with logical AND, preserving input order among
// survivors. Pure: the input slice is never mutated.
func Filter(products []*entity.Product, criteria Criteria, ix *Index) []*entity.Product {
	filtered := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if !Matches(product, criteria, ix) {
			continue
		}
		filtered = append(filtered, product)
	}

	return filtered
}

// Matches reports whether a single product passes every criterion.
func Matches(product *entity.Product, criteria Criteria, ix *Index) bool {
	return matchesSearch(product, criteria.Search, ix) &&
		matchesTags(product, criteria.TagTokens, ix) &&
		matchesSupplier(product, criteria.SupplierTokens) &&
		matchesPrice(product, criteria.PriceBucket)
}

func matchesSearch(product *entity.Product, term string, ix *Index) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}

	haystacks := []string{product.Name}
	if product.SKU != nil {
		haystacks = append(haystacks, *product.SKU)
	}
	if product.ASIN != nil {
		haystacks = append(haystacks, *product.ASIN)
	}
	if name := ix.SupplierName(product.SupplierID); name != "" {
		haystacks = append(haystacks, name)
	}

	for _, haystack := range haystacks {
		if strings.Contains(strings.ToLower(haystack), term) {
			return true
		}
	}

	return false
}

// matchesTags evaluates tri-state tag tokens against the product's match set:
// the union of all four effective dimensions PLUS the master item's raw
// values unconditionally. The unconditional master union means a master's
// tags always count toward matching even when a product override removed
// them — intentional lenient-match semantics, preserved from the original
// behavior (flagged for product-owner review, not a bug to fix here).
func matchesTags(product *entity.Product, tokens []string, ix *Index) bool {
	if len(tokens) == 0 {
		return true
	}

	master := ix.MasterItem(product.MasterItemID)
	resolution := Resolve(product, master)

	union := make(map[string]bool)
	for _, dim := range entity.TagDimensions {
		for _, value := range resolution.EffectiveValues(dim) {
			union[value] = true
		}
		if master != nil {
			for _, value := range master.Tags.Values(dim) {
				union[value] = true
			}
		}
	}

	for _, token := range tokens {
		if excluded, ok := strings.CutPrefix(token, "!"); ok {
			if union[excluded] {
				return false
			}

			continue
		}
		if !union[token] {
			return false
		}
	}

	return true
}

func matchesSupplier(product *entity.Product, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}

	supplierID := ""
	if product.SupplierID != nil {
		supplierID = *product.SupplierID
	}

	hasIncludes := false
	included := false
	for _, token := range tokens {
		if excluded, ok := strings.CutPrefix(token, "!"); ok {
			if supplierID == excluded {
				return false
			}

			continue
		}
		hasIncludes = true
		if supplierID == token {
			included = true
		}
	}

	// No include tokens passes the include side automatically.
	return !hasIncludes || included
}

func matchesPrice(product *entity.Product, bucket PriceBucket) bool {
	price := PriceOf(product)

	switch bucket {
	case PriceBucketAny:
		return true
	case PriceBucketUnder50:
		return price < 50
	case PriceBucket50To100:
		return price >= 50 && price <= 100
	case PriceBucket100To500:
		return price > 100 && price <= 500
	case PriceBucketOver500:
		return price > 500
	}

	// Unknown bucket values behave as "no constraint".
	return true
}

// PriceOf coerces the serialized price to a float; non-numeric or missing
// prices coerce to 0 for bucketing and sorting.
func PriceOf(product *entity.Product) float64 {
	raw := strings.TrimSpace(product.Price)
	if raw == "" {
		return 0
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}

	return price
}

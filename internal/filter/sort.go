package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/chiawei-lin/kcouper/internal/menu"
)

// SortKeys lists every supported sort key, in display order.
var SortKeys = []string{
	"coupon_code-asc", "coupon_code-desc",
	"price-asc", "price-desc",
	"end_date-asc", "end_date-desc",
	"discount-asc", "discount-desc",
}

// Sort orders a coupon collection by the given key and returns a new slice;
// the input is left untouched. An unrecognized key leaves the order
// unchanged.
//
// The discount keys are inverted relative to their names: "discount-asc"
// orders by descending 折 value and "discount-desc" by ascending. The
// original product's dropdown shipped with these semantics, so they are
// preserved and pinned by a regression test rather than silently fixed.
func Sort(coupons []*menu.Coupon, key string) []*menu.Coupon {
	sorted := make([]*menu.Coupon, len(coupons))
	copy(sorted, coupons)

	var less func(a, b *menu.Coupon) bool
	switch NormalizeSortKey(key) {
	case "coupon_code-asc":
		less = func(a, b *menu.Coupon) bool { return a.CouponCode < b.CouponCode }
	case "coupon_code-desc":
		less = func(a, b *menu.Coupon) bool { return a.CouponCode > b.CouponCode }
	case "price-asc":
		less = func(a, b *menu.Coupon) bool { return a.Price < b.Price }
	case "price-desc":
		less = func(a, b *menu.Coupon) bool { return a.Price > b.Price }
	case "end_date-asc":
		less = endDateLess
	case "end_date-desc":
		less = func(a, b *menu.Coupon) bool { return endDateLess(b, a) }
	case "discount-asc":
		less = func(a, b *menu.Coupon) bool { return sortDiscount(a) > sortDiscount(b) }
	case "discount-desc":
		less = func(a, b *menu.Coupon) bool { return sortDiscount(a) < sortDiscount(b) }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}

// NormalizeSortKey canonicalizes a sort key, accepting a few spelling
// variants. Unknown input maps to "" (no sorting).
func NormalizeSortKey(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, "_", "-")
	switch key {
	case "code-asc", "coupon-code-asc":
		return "coupon_code-asc"
	case "code-desc", "coupon-code-desc":
		return "coupon_code-desc"
	case "price-asc", "price-desc", "discount-asc", "discount-desc":
		return key
	case "end-date-asc", "end-asc", "ending-asc", "ending":
		return "end_date-asc"
	case "end-date-desc", "end-desc", "ending-desc":
		return "end_date-desc"
	default:
		return ""
	}
}

// ValidSortKey reports whether raw maps to a supported sort key.
func ValidSortKey(raw string) bool {
	return raw == "" || NormalizeSortKey(raw) != ""
}

// endDateLess orders coupons chronologically. A date that fails to parse
// sorts before every real one, and two unparsable dates compare lexically so
// their relative order stays deterministic.
func endDateLess(a, b *menu.Coupon) bool {
	ta, okA := parseEndDate(a)
	tb, okB := parseEndDate(b)
	switch {
	case okA && okB:
		return ta.Before(tb)
	case okA != okB:
		return !okA
	default:
		return strings.TrimSpace(a.EndDate) < strings.TrimSpace(b.EndDate)
	}
}

func parseEndDate(c *menu.Coupon) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(c.EndDate))
	return t, err == nil
}

func sortDiscount(c *menu.Coupon) float64 {
	if c.Discount == 0 {
		return menu.NoDiscount
	}
	return c.Discount
}

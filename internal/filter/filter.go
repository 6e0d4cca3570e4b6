package filter

import (
	"strings"

	"github.com/chiawei-lin/kcouper/internal/catalog"
	"github.com/chiawei-lin/kcouper/internal/menu"
)

// Options holds all filter criteria.
type Options struct {
	// Labels are the active filter tags; every label must match at least one
	// item of a coupon for the coupon to stay visible.
	Labels []string
	// FlavorSearch also matches labels against items' substitution flavors.
	FlavorSearch bool
	// FavoritesOnly keeps only coupons whose code is in the favorite set.
	FavoritesOnly bool
	Sort          string
	Limit         int
}

// Visible decides whether a single coupon passes the active filters.
// Matching is literal substring containment on raw item names, the same form
// the catalog labels were minted from.
func Visible(coupon *menu.Coupon, opts Options, cat *catalog.Catalog, favs map[int]bool) bool {
	if opts.FavoritesOnly && !favs[coupon.CouponCode] {
		return false
	}

	for _, label := range opts.Labels {
		if !labelMatches(coupon, cat.Resolve(label), opts.FlavorSearch) {
			return false
		}
	}
	return true
}

// Apply filters, sorts, and truncates a coupon collection according to opts.
// The input slice is never mutated.
func Apply(coupons []*menu.Coupon, opts Options, cat *catalog.Catalog, favs map[int]bool) []*menu.Coupon {
	result := where(coupons, func(c *menu.Coupon) bool {
		return Visible(c, opts, cat, favs)
	})

	result = Sort(result, opts.Sort)

	if opts.Limit > 0 && opts.Limit < len(result) {
		result = result[:opts.Limit]
	}
	return result
}

// LabelCounts returns, for every catalog label, how many coupons it matches
// under the given flavor-search setting.
func LabelCounts(coupons []*menu.Coupon, cat *catalog.Catalog, flavorSearch bool) map[string]int {
	counts := make(map[string]int, len(cat.Labels()))
	for _, label := range cat.Labels() {
		searches := cat.Resolve(label)
		for _, c := range coupons {
			if labelMatches(c, searches, flavorSearch) {
				counts[label]++
			}
		}
	}
	return counts
}

func labelMatches(coupon *menu.Coupon, searches []string, flavorSearch bool) bool {
	for _, item := range coupon.Items {
		for _, search := range searches {
			if strings.Contains(item.Name, search) {
				return true
			}
			if !flavorSearch {
				continue
			}
			for _, flavor := range item.Flavors {
				if strings.Contains(flavor.Name, search) {
					return true
				}
			}
		}
	}
	return false
}

func where(coupons []*menu.Coupon, fn func(*menu.Coupon) bool) []*menu.Coupon {
	var result []*menu.Coupon
	for _, c := range coupons {
		if fn(c) {
			result = append(result, c)
		}
	}
	return result
}

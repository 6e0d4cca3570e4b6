package filter_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/chiawei-lin/kcouper/internal/catalog"
	"github.com/chiawei-lin/kcouper/internal/filter"
	"github.com/chiawei-lin/kcouper/internal/menu"
	"github.com/stretchr/testify/assert"
)

// referenceApply is a deliberately naive restatement of the visible/sort/limit
// contract, used to cross-check Apply on randomized inputs.
func referenceApply(coupons []*menu.Coupon, opts filter.Options, cat *catalog.Catalog, favs map[int]bool) []*menu.Coupon {
	var kept []*menu.Coupon
	for _, c := range coupons {
		if opts.FavoritesOnly && !favs[c.CouponCode] {
			continue
		}
		allMatch := true
		for _, label := range opts.Labels {
			if !referenceLabelMatch(c, cat.Resolve(label), opts.FlavorSearch) {
				allMatch = false
				break
			}
		}
		if !allMatch {
			continue
		}
		kept = append(kept, c)
	}

	kept = filter.Sort(kept, opts.Sort)
	if opts.Limit > 0 && opts.Limit < len(kept) {
		kept = kept[:opts.Limit]
	}
	return kept
}

func referenceLabelMatch(c *menu.Coupon, searches []string, flavorSearch bool) bool {
	for _, search := range searches {
		for _, item := range c.Items {
			if strings.Contains(item.Name, search) {
				return true
			}
			if flavorSearch {
				for _, flavor := range item.Flavors {
					if strings.Contains(flavor.Name, search) {
						return true
					}
				}
			}
		}
	}
	return false
}

var equivalenceItemPool = []string{
	"咔啦脆雞(辣)",
	"咔啦脆雞2塊",
	"原味蛋撻",
	"香酥脆薯",
	"雙色轉轉QQ球",
	"咔啦雞腿堡+香酥脆薯",
	"上校雞塊",
}

func randomCoupon(rng *rand.Rand, idx int) *menu.Coupon {
	itemCount := 1 + rng.Intn(3)
	items := make([]menu.Item, 0, itemCount)
	for range itemCount {
		item := menu.Item{
			Name:  equivalenceItemPool[rng.Intn(len(equivalenceItemPool))],
			Count: 1 + rng.Intn(4),
		}
		if rng.Intn(3) == 0 {
			item.Flavors = []menu.Flavor{
				{Name: equivalenceItemPool[rng.Intn(len(equivalenceItemPool))]},
			}
		}
		items = append(items, item)
	}

	discounts := []float64{0, menu.NoDiscount, 5.5, 7.1, 8.0, 9.9}
	return &menu.Coupon{
		Name:       fmt.Sprintf("優惠餐 %d", idx),
		CouponCode: 10000 + idx,
		Price:      49 + rng.Intn(400),
		EndDate:    fmt.Sprintf("2023-%02d-%02d", 1+rng.Intn(12), 1+rng.Intn(28)),
		Items:      items,
		Discount:   discounts[rng.Intn(len(discounts))],
	}
}

func randomEquivalenceOptions(rng *rand.Rand) filter.Options {
	labelPool := [][]string{
		nil,
		{"炸雞"},
		{"蛋撻"},
		{"炸雞", "脆薯"},
		{"QQ球"},
		{"沒這個標籤"},
	}
	sorts := []string{"", "price-asc", "price-desc", "coupon_code-desc", "end_date-asc", "discount-asc", "discount-desc"}
	limits := []int{0, 1, 3, 10}

	return filter.Options{
		Labels:        labelPool[rng.Intn(len(labelPool))],
		FlavorSearch:  rng.Intn(2) == 0,
		FavoritesOnly: rng.Intn(3) == 0,
		Sort:          sorts[rng.Intn(len(sorts))],
		Limit:         limits[rng.Intn(len(limits))],
	}
}

func TestApply_ReferenceEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for caseNum := 0; caseNum < 300; caseNum++ {
		couponCount := rng.Intn(40)
		coupons := make([]*menu.Coupon, 0, couponCount)
		favs := map[int]bool{}
		for i := range couponCount {
			coupons = append(coupons, randomCoupon(rng, i))
			if rng.Intn(4) == 0 {
				favs[10000+i] = true
			}
		}
		cat := catalog.Build(catalog.Seed(), coupons)

		opts := randomEquivalenceOptions(rng)
		got := filter.Apply(coupons, opts, cat, favs)
		want := referenceApply(coupons, opts, cat, favs)

		assert.Equal(t, want, got, "mismatch for opts=%+v case=%d", opts, caseNum)
	}
}

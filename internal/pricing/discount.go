package pricing

import (
	"math"

	"github.com/chiawei-lin/kcouper/internal/menu"
	"github.com/chiawei-lin/kcouper/internal/normalize"
)

// Annotator derives OriginalPrice and Discount for coupons. It never fails:
// resolution errors degrade that one coupon to "no known discount" and leave
// the rest of the collection untouched.
type Annotator struct {
	resolver *Resolver
}

// NewAnnotator returns an Annotator using the given resolver.
func NewAnnotator(resolver *Resolver) *Annotator {
	return &Annotator{resolver: resolver}
}

// Annotate computes coupon.OriginalPrice and coupon.Discount.
//
// A partial sum would understate the discount, so if any item fails to
// resolve the whole sum is abandoned (OriginalPrice 0). When every item
// resolves but the bundle is not cheaper than its parts, the sum is kept for
// diagnostics and the discount stays unknown.
func (a *Annotator) Annotate(coupon *menu.Coupon) {
	coupon.OriginalPrice = 0
	coupon.Discount = menu.NoDiscount

	total := 0
	for _, item := range coupon.Items {
		if normalize.Excluded(item.Name) {
			continue
		}
		price, err := a.resolver.OriginalPrice(item.Name, item.Count)
		if err != nil {
			return
		}
		total += price
	}

	coupon.OriginalPrice = total
	if total > coupon.Price {
		coupon.Discount = round1(float64(coupon.Price) / float64(total) * 10)
	}
}

// AnnotateAll annotates every coupon in the dataset. Run once at startup;
// afterwards the annotations are read-only.
func (a *Annotator) AnnotateAll(ds *menu.Dataset) {
	for _, coupon := range ds.Coupons {
		a.Annotate(coupon)
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

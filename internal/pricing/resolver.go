// Package pricing reconstructs the non-discounted price of coupon items from
// the single-item reference menu, and derives each coupon's discount from it.
package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chiawei-lin/kcouper/internal/menu"
	"github.com/chiawei-lin/kcouper/internal/normalize"
)

// ErrItemNotFound is returned when no pricing rule matches a name/count
// combination. Callers recover per coupon; it never aborts a whole run.
var ErrItemNotFound = errors.New("pricing: item not found")

// rewriteRule folds a multiplier encoded in a raw name back into the count.
// Matched against the raw, un-normalized name, since the spellings below are
// literal menu strings.
type rewriteRule struct {
	prefix string
	name   string
	factor int
}

var rewriteRules = []rewriteRule{
	{prefix: "2塊咔啦脆雞", name: "咔啦脆雞", factor: 2},
	{prefix: "2塊卡啦脆雞", name: "咔啦脆雞", factor: 2},
	{prefix: "2入原味蛋撻", name: "原味蛋撻", factor: 2},
}

// nicknames maps historical or shorthand spellings to their menu keys.
var nicknames = map[string]string{
	"卡啦脆雞":   "咔啦脆雞",
	"卡啦雞腿堡":  "咔啦雞腿堡",
	"小薯":      "香酥脆薯",
	"薯條":      "香酥脆薯",
	"紐澳良烤雞腿堡": "紐奧良烤雞腿堡",
}

const (
	twoPieceBase = "咔啦脆雞"
	twoPieceSKU  = "咔啦脆雞2塊"
)

// nuggetBases are the spellings of the nugget family whose raw count selects
// a fixed-size SKU. There is no per-unit nugget price to fall back on.
var (
	nuggetBases  = map[string]struct{}{"上校雞塊": {}, "上校鷄塊": {}}
	nuggetCounts = map[int]struct{}{4: {}, 8: {}, 20: {}}
)

// Resolver prices a possibly compound item name against the single-item menu.
type Resolver struct {
	table menu.PriceTable
}

// NewResolver returns a Resolver backed by the given price table. The table
// is read-only to the resolver.
func NewResolver(table menu.PriceTable) *Resolver {
	return &Resolver{table: table}
}

// OriginalPrice returns the non-discounted total for count units of the named
// item. The rule order here is load-bearing: rewrites reference literal
// un-normalized strings, and the two-piece rule must win over the direct table
// lookup because both the single and the 2-piece SKU exist as distinct keys.
func (r *Resolver) OriginalPrice(name string, count int) (int, error) {
	for _, rule := range rewriteRules {
		if strings.HasPrefix(name, rule.prefix) {
			name = rule.name
			count *= rule.factor
			break
		}
	}

	key := normalize.Name(name)

	if key == twoPieceBase {
		pair, okPair := r.table[twoPieceSKU]
		single, okSingle := r.table[twoPieceBase]
		if okPair && okSingle {
			return (count/2)*pair + (count%2)*single, nil
		}
	}

	if price, ok := r.table[key]; ok {
		return price * count, nil
	}

	if alias, ok := nicknames[key]; ok {
		if price, ok := r.table[alias]; ok {
			return price * count, nil
		}
	}

	if _, ok := nuggetBases[key]; ok {
		if _, ok := nuggetCounts[count]; !ok {
			return 0, fmt.Errorf("%w: %s x %d", ErrItemNotFound, name, count)
		}
		if price, ok := r.table[fmt.Sprintf("上校雞塊%d塊", count)]; ok {
			return price, nil
		}
		return 0, fmt.Errorf("%w: %s x %d", ErrItemNotFound, name, count)
	}

	if parts := strings.Split(name, "+"); len(parts) > 1 {
		total := 0
		for _, part := range parts {
			if normalize.Excluded(part) {
				continue
			}
			price, err := r.OriginalPrice(part, count)
			if err != nil {
				return 0, err
			}
			total += price
		}
		if total > 0 {
			return total, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrItemNotFound, name)
}

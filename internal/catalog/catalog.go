// Package catalog maps human-friendly filter labels to the raw item-name
// substrings they should match. A static seed covers the labels whose raw
// spellings vary across the menu; scanning the dataset at startup guarantees
// every remaining item name gets at least a singleton label.
package catalog

import (
	"strings"

	"github.com/chiawei-lin/kcouper/internal/menu"
	"github.com/chiawei-lin/kcouper/internal/normalize"
)

// Seed returns the hand-curated label table. Each label maps to the raw-name
// substrings considered equivalent to it (historical spellings included).
func Seed() map[string][]string {
	return map[string][]string{
		"蛋撻":      {"原味蛋撻", "蛋撻"},
		"炸雞":      {"咔啦脆雞", "卡啦脆雞"},
		"椒麻雞":     {"青花椒香麻脆雞"},
		"紙包雞":     {"義式香草紙包雞", "紙包雞"},
		"咔啦雞堡":    {"咔啦雞腿堡", "卡啦雞腿堡"},
		"花生熔岩雞腿堡": {"花生熔岩卡啦雞腿堡", "花生熔岩咔啦雞腿堡"},
		"椒麻雞腿堡":   {"青花椒香麻咔啦雞腿堡", "青花椒香麻卡啦雞腿堡", "青花椒咔啦雞腿堡"},
		"烤雞腿堡":    {"紐奧良烙烤雞腿堡", "紐奧良烤腿堡", "紐澳良烤雞腿堡", "紐奧良烤雞腿堡"},
		"雞塊":      {"上校雞塊"},
		"脆薯":      {"香酥脆薯", "20:00後供應香酥脆薯", "小薯", "薯條"},
		"QQ球":     {"雙色轉轉QQ球"},
		"點心盒":     {"點心盒-上校雞塊+香酥脆薯", "點心盒"},
		"雞汁飯":     {"20:00前供應雞汁風味飯", "雞汁風味飯"},
		"大福":      {"草苺起司冰淇淋大福"},
	}
}

// seedOrder fixes the display order of the seed labels. Map iteration order
// would shuffle the filter buttons between runs.
var seedOrder = []string{
	"蛋撻", "炸雞", "椒麻雞", "紙包雞", "咔啦雞堡", "花生熔岩雞腿堡",
	"椒麻雞腿堡", "烤雞腿堡", "雞塊", "脆薯", "QQ球", "點心盒", "雞汁飯", "大福",
}

// Catalog is the frozen label table for a session. Built once by Build and
// never mutated afterwards.
type Catalog struct {
	aliases map[string][]string
	labels  []string
	known   map[string]struct{}
}

// Build combines the seed table with every distinct normalized item name found
// in the dataset. Discovery order follows coupon, then item, then
// compound-part order; the first spelling seen wins and nothing is ever
// overwritten.
func Build(seed map[string][]string, coupons []*menu.Coupon) *Catalog {
	c := &Catalog{
		aliases: make(map[string][]string, len(seed)),
		known:   make(map[string]struct{}),
	}

	for _, label := range seedOrder {
		names, ok := seed[label]
		if !ok {
			continue
		}
		c.insert(label, names)
	}
	// Seed labels outside the fixed order (custom seeds in tests).
	for label, names := range seed {
		if _, ok := c.aliases[label]; !ok {
			c.insert(label, names)
		}
	}

	for _, coupon := range coupons {
		for _, item := range coupon.Items {
			for _, part := range strings.Split(item.Name, "+") {
				if normalize.Excluded(part) {
					continue
				}
				name := normalize.Name(part)
				if name == "" {
					continue
				}
				if _, ok := c.known[name]; ok {
					continue
				}
				// A name that is itself a seed label must not clobber
				// that label's alias set.
				if _, ok := c.aliases[name]; ok {
					continue
				}
				c.insert(name, []string{name})
			}
		}
	}
	return c
}

func (c *Catalog) insert(label string, names []string) {
	c.aliases[label] = names
	c.labels = append(c.labels, label)
	for _, n := range names {
		c.known[n] = struct{}{}
	}
}

// Resolve returns the raw-name substrings to match for a label. Unknown
// labels fall back to a literal substring match on the label itself.
func (c *Catalog) Resolve(label string) []string {
	if names, ok := c.aliases[label]; ok {
		return names
	}
	return []string{label}
}

// Labels returns every filter label in insertion order.
func (c *Catalog) Labels() []string {
	return c.labels
}

// Has reports whether label is a known catalog entry.
func (c *Catalog) Has(label string) bool {
	_, ok := c.aliases[label]
	return ok
}

package normalize

import "strings"

// Drinks, condiments, packaging notices and other non-purchasable lines.
// These are dropped from filtering and price computation entirely.
var exclusions = []string{
	"可樂",
	"七喜",
	"玉米濃湯",
	"綠茶",
	"紅茶",
	"奶茶",
	"上校雞塊分享盒",
	"糖醋醬",
	"響應環保不需湯匙",
	"不需刀叉及手套",
}

// Excluded reports whether a raw sub-name is not a purchasable item.
func Excluded(raw string) bool {
	for _, e := range exclusions {
		if strings.Contains(raw, e) {
			return true
		}
	}
	return false
}

package catalog_test

import (
	"strings"
	"testing"

	"github.com/chiawei-lin/kcouper/internal/catalog"
	"github.com/chiawei-lin/kcouper/internal/menu"
	"github.com/chiawei-lin/kcouper/internal/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coupon(names ...string) *menu.Coupon {
	items := make([]menu.Item, 0, len(names))
	for _, n := range names {
		items = append(items, menu.Item{Name: n, Count: 1})
	}
	return &menu.Coupon{Name: "test", Items: items}
}

func TestBuild_SeedLabelsComeFirstInFixedOrder(t *testing.T) {
	cat := catalog.Build(catalog.Seed(), nil)

	labels := cat.Labels()
	require.GreaterOrEqual(t, len(labels), 14)
	assert.Equal(t, "蛋撻", labels[0])
	assert.Equal(t, "炸雞", labels[1])
	assert.Equal(t, "大福", labels[13])
}

func TestBuild_DiscoversUnknownNamesAsSingletons(t *testing.T) {
	coupons := []*menu.Coupon{coupon("神秘新品A"), coupon("神秘新品B")}
	cat := catalog.Build(catalog.Seed(), coupons)

	assert.True(t, cat.Has("神秘新品A"))
	assert.Equal(t, []string{"神秘新品A"}, cat.Resolve("神秘新品A"))
	assert.True(t, cat.Has("神秘新品B"))
}

func TestBuild_SeededSpellingsAreNotReinserted(t *testing.T) {
	// 咔啦脆雞 is already an alias under 炸雞; scanning it again must not
	// mint a second label.
	coupons := []*menu.Coupon{coupon("咔啦脆雞")}
	cat := catalog.Build(catalog.Seed(), coupons)

	assert.False(t, cat.Has("咔啦脆雞"))
	for _, label := range cat.Labels() {
		if label == "咔啦脆雞" {
			t.Fatalf("seeded spelling minted its own label")
		}
	}
}

func TestBuild_SeedLabelNamedItemKeepsSeedAliases(t *testing.T) {
	// 炸雞 is a seed label whose alias list does not contain the label
	// string itself. An item literally named 炸雞 must not replace the
	// seeded aliases or mint a duplicate label.
	coupons := []*menu.Coupon{coupon("炸雞")}
	cat := catalog.Build(catalog.Seed(), coupons)

	assert.Equal(t, []string{"咔啦脆雞", "卡啦脆雞"}, cat.Resolve("炸雞"))
	seen := 0
	for _, label := range cat.Labels() {
		if label == "炸雞" {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestBuild_FirstSeenSingletonWins(t *testing.T) {
	coupons := []*menu.Coupon{
		coupon("神秘新品(辣)"),
		coupon("神秘新品(不辣)"),
	}
	cat := catalog.Build(catalog.Seed(), coupons)

	// Both spellings normalize to the same key; only one label appears.
	seen := 0
	for _, label := range cat.Labels() {
		if label == "神秘新品" {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestBuild_SplitsCompoundNamesAndSkipsExclusions(t *testing.T) {
	coupons := []*menu.Coupon{coupon("神秘新品+大杯可樂")}
	cat := catalog.Build(catalog.Seed(), coupons)

	assert.True(t, cat.Has("神秘新品"))
	assert.False(t, cat.Has("大杯可樂"))
}

func TestBuild_CustomSeedOutsideFixedOrder(t *testing.T) {
	seed := map[string][]string{"測試標籤": {"測試A", "測試B"}}
	cat := catalog.Build(seed, nil)

	assert.True(t, cat.Has("測試標籤"))
	assert.Equal(t, []string{"測試A", "測試B"}, cat.Resolve("測試標籤"))
}

func TestResolve_UnknownLabelFallsBackToItself(t *testing.T) {
	cat := catalog.Build(catalog.Seed(), nil)
	assert.Equal(t, []string{"隨便打的"}, cat.Resolve("隨便打的"))
	assert.False(t, cat.Has("隨便打的"))
}

func TestBuild_EveryNonExcludedItemIsCovered(t *testing.T) {
	coupons := []*menu.Coupon{
		coupon("咔啦脆雞(辣)", "原味蛋撻"),
		coupon("神秘新品+玉米濃湯"),
		coupon("青花椒香麻脆雞2塊"),
	}
	cat := catalog.Build(catalog.Seed(), coupons)

	for _, c := range coupons {
		for _, item := range c.Items {
			if normalize.Excluded(item.Name) {
				continue
			}
			covered := false
			for _, label := range cat.Labels() {
				for _, search := range cat.Resolve(label) {
					if search != "" && strings.Contains(item.Name, search) {
						covered = true
					}
				}
			}
			assert.True(t, covered, "item %q has no matching label", item.Name)
		}
	}
}

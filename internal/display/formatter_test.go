package display_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/chiawei-lin/kcouper/internal/display"
	"github.com/chiawei-lin/kcouper/internal/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCoupons() []*menu.Coupon {
	return []*menu.Coupon{
		{
			Name:        "炸雞優惠",
			ProductCode: "24693-1",
			CouponCode:  24693,
			Price:       49,
			StartDate:   "2023-01-01",
			EndDate:     "2023-04-30",
			Items: []menu.Item{
				{
					Name:  "咔啦脆雞2塊(辣)",
					Count: 1,
					Flavors: []menu.Flavor{
						{Name: "咔啦脆雞2塊(不辣)", AdditionPrice: 0},
					},
				},
			},
			OriginalPrice: 69,
			Discount:      7.1,
		},
		{
			Name:        "蛋撻禮盒",
			ProductCode: "40872-1",
			CouponCode:  40872,
			Price:       199,
			StartDate:   "2023-01-01",
			EndDate:     "2023-05-31",
			Items:       []menu.Item{{Name: "原味蛋撻", Count: 6}},
			Discount:    menu.NoDiscount,
		},
	}
}

func TestPrintCoupons_ContainsExpectedContent(t *testing.T) {
	var buf bytes.Buffer
	display.PrintCoupons(&buf, sampleCoupons(), map[int]bool{24693: true})
	output := buf.String()

	assert.Contains(t, output, "KFC Coupons")
	assert.Contains(t, output, "2 coupons")
	assert.Contains(t, output, "炸雞優惠")
	assert.Contains(t, output, "$49")
	assert.Contains(t, output, "7.1折")
	assert.Contains(t, output, "$69")
	assert.Contains(t, output, "★")
	assert.Contains(t, output, "code 24693")
	assert.Contains(t, output, "咔啦脆雞2塊(辣) x 1")
}

func TestPrintCoupons_NoDiscountHasNoBadge(t *testing.T) {
	var buf bytes.Buffer
	display.PrintCoupons(&buf, sampleCoupons()[1:], nil)
	output := buf.String()

	assert.Contains(t, output, "蛋撻禮盒")
	assert.NotContains(t, output, "折")
	assert.NotContains(t, output, "★")
}

func TestPrintCouponsJSON(t *testing.T) {
	var buf bytes.Buffer
	err := display.PrintCouponsJSON(&buf, sampleCoupons(), map[int]bool{24693: true})
	require.NoError(t, err)

	var out []display.CouponJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 2)

	assert.Equal(t, 24693, out[0].CouponCode)
	assert.Equal(t, 7.1, out[0].Discount)
	assert.Equal(t, 69, out[0].OriginalPrice)
	assert.True(t, out[0].Favorite)
	require.Len(t, out[0].Items, 1)
	assert.Equal(t, []string{"咔啦脆雞2塊(不辣)"}, out[0].Items[0].Flavors)

	assert.Equal(t, menu.NoDiscount, out[1].Discount)
	assert.False(t, out[1].Favorite)
}

func TestPrintCouponDetail(t *testing.T) {
	var buf bytes.Buffer
	display.PrintCouponDetail(&buf, sampleCoupons()[0], false)
	output := buf.String()

	assert.Contains(t, output, "餐點可以更換的品項")
	assert.Contains(t, output, "咔啦脆雞2塊(不辣)")
	assert.Contains(t, output, "+$0")
}

func TestPrintCouponDetail_NoFlavors(t *testing.T) {
	var buf bytes.Buffer
	display.PrintCouponDetail(&buf, sampleCoupons()[1], false)

	assert.Contains(t, buf.String(), "沒有可以更換的品項")
}

func TestPrintLabels(t *testing.T) {
	var buf bytes.Buffer
	display.PrintLabels(&buf, []string{"蛋撻", "炸雞"}, map[string]int{"蛋撻": 3, "炸雞": 0})
	output := buf.String()

	assert.Contains(t, output, "蛋撻: 3 coupons")
	assert.Contains(t, output, "炸雞: 0 coupons")
}

func TestPrintFavorites(t *testing.T) {
	coupons := sampleCoupons()
	ds := &menu.Dataset{
		CouponsByCode: map[string]*menu.Coupon{"24693": coupons[0]},
		Coupons:       coupons[:1],
	}

	var buf bytes.Buffer
	display.PrintFavorites(&buf, []int{24693, 11111}, ds)
	output := buf.String()

	assert.Contains(t, output, "Favorites (2)")
	assert.Contains(t, output, "#24693")
	assert.Contains(t, output, "炸雞優惠")
	assert.Contains(t, output, "#11111")
	assert.Contains(t, output, "no longer in dataset")
}

func TestFormatDiscount(t *testing.T) {
	assert.Equal(t, "", display.FormatDiscount(0))
	assert.Equal(t, "", display.FormatDiscount(menu.NoDiscount))
	assert.Equal(t, "7.1折", display.FormatDiscount(7.1))
	assert.Equal(t, "8折", display.FormatDiscount(8.0))
}

package pricing_test

import (
	"testing"

	"github.com/chiawei-lin/kcouper/internal/menu"
	"github.com/chiawei-lin/kcouper/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() menu.PriceTable {
	return menu.PriceTable{
		"咔啦脆雞":    55,
		"咔啦脆雞2塊":  105,
		"原味蛋撻":    25,
		"香酥脆薯":    45,
		"咔啦雞腿堡":   89,
		"紐奧良烤雞腿堡": 99,
		"上校雞塊4塊":  89,
		"上校雞塊8塊":  169,
		"上校雞塊20塊": 399,
	}
}

func TestOriginalPrice_DirectLookup(t *testing.T) {
	r := pricing.NewResolver(sampleTable())

	price, err := r.OriginalPrice("原味蛋撻", 1)
	require.NoError(t, err)
	assert.Equal(t, 25, price)

	price, err = r.OriginalPrice("原味蛋撻", 3)
	require.NoError(t, err)
	assert.Equal(t, 75, price)
}

func TestOriginalPrice_QualifiersStrippedBeforeLookup(t *testing.T) {
	r := pricing.NewResolver(sampleTable())

	price, err := r.OriginalPrice("咔啦脆雞2塊(辣)", 1)
	require.NoError(t, err)
	assert.Equal(t, 105, price)
}

func TestOriginalPrice_TwoPieceRule(t *testing.T) {
	r := pricing.NewResolver(sampleTable())

	cases := []struct {
		count int
		want  int
	}{
		{1, 55},          // 0 pairs + 1 single
		{2, 105},         // 1 pair
		{3, 160},         // 1 pair + 1 single
		{4, 210},         // 2 pairs
		{5, 105*2 + 55},  // 2 pairs + 1 single
		{6, 105 * 3},     // 3 pairs
	}
	for _, tc := range cases {
		price, err := r.OriginalPrice("咔啦脆雞", tc.count)
		require.NoError(t, err)
		assert.Equal(t, tc.want, price, "count %d", tc.count)
	}
}

func TestOriginalPrice_TwoPieceRuleWinsOverDirectLookup(t *testing.T) {
	// Both 咔啦脆雞 and 咔啦脆雞2塊 are table keys; resolving the single
	// spelling must still use pairing, not price*count.
	r := pricing.NewResolver(sampleTable())

	price, err := r.OriginalPrice("咔啦脆雞(辣)", 2)
	require.NoError(t, err)
	assert.Equal(t, 105, price)
	assert.NotEqual(t, 110, price)
}

func TestOriginalPrice_RewriteRules(t *testing.T) {
	r := pricing.NewResolver(sampleTable())

	// "2塊咔啦脆雞" x 1 folds into 咔啦脆雞 x 2 and goes through pairing.
	price, err := r.OriginalPrice("2塊咔啦脆雞", 1)
	require.NoError(t, err)
	assert.Equal(t, 105, price)

	price, err = r.OriginalPrice("2塊卡啦脆雞(辣)", 2)
	require.NoError(t, err)
	assert.Equal(t, 210, price)

	price, err = r.OriginalPrice("2入原味蛋撻", 1)
	require.NoError(t, err)
	assert.Equal(t, 50, price)
}

func TestOriginalPrice_Nicknames(t *testing.T) {
	r := pricing.NewResolver(sampleTable())

	price, err := r.OriginalPrice("小薯", 1)
	require.NoError(t, err)
	assert.Equal(t, 45, price)

	price, err = r.OriginalPrice("薯條", 2)
	require.NoError(t, err)
	assert.Equal(t, 90, price)

	price, err = r.OriginalPrice("紐澳良烤雞腿堡", 1)
	require.NoError(t, err)
	assert.Equal(t, 99, price)
}

func TestOriginalPrice_NuggetFamilySelectsFixedSKU(t *testing.T) {
	r := pricing.NewResolver(sampleTable())

	// The count selects a SKU; the SKU price is not multiplied.
	price, err := r.OriginalPrice("上校雞塊", 4)
	require.NoError(t, err)
	assert.Equal(t, 89, price)

	price, err = r.OriginalPrice("上校雞塊", 8)
	require.NoError(t, err)
	assert.Equal(t, 169, price)

	price, err = r.OriginalPrice("上校鷄塊", 20)
	require.NoError(t, err)
	assert.Equal(t, 399, price)
}

func TestOriginalPrice_NuggetFamilyUnknownCountFails(t *testing.T) {
	r := pricing.NewResolver(sampleTable())

	_, err := r.OriginalPrice("上校雞塊", 6)
	assert.ErrorIs(t, err, pricing.ErrItemNotFound)

	_, err = r.OriginalPrice("上校雞塊", 1)
	assert.ErrorIs(t, err, pricing.ErrItemNotFound)
}

func TestOriginalPrice_CompoundNamesAddUp(t *testing.T) {
	r := pricing.NewResolver(sampleTable())

	price, err := r.OriginalPrice("咔啦雞腿堡+香酥脆薯", 1)
	require.NoError(t, err)
	assert.Equal(t, 89+45, price)
}

func TestOriginalPrice_CompoundSkipsExcludedParts(t *testing.T) {
	r := pricing.NewResolver(sampleTable())

	price, err := r.OriginalPrice("咔啦雞腿堡+大杯可樂", 1)
	require.NoError(t, err)
	assert.Equal(t, 89, price)
}

func TestOriginalPrice_CompoundFailsWhenAnyPartUnresolvable(t *testing.T) {
	r := pricing.NewResolver(sampleTable())

	_, err := r.OriginalPrice("咔啦雞腿堡+沒這個品項", 1)
	assert.ErrorIs(t, err, pricing.ErrItemNotFound)
}

func TestOriginalPrice_AllPartsExcludedFails(t *testing.T) {
	r := pricing.NewResolver(sampleTable())

	_, err := r.OriginalPrice("大杯可樂+玉米濃湯", 1)
	assert.ErrorIs(t, err, pricing.ErrItemNotFound)
}

func TestOriginalPrice_UnknownNameFails(t *testing.T) {
	r := pricing.NewResolver(sampleTable())

	_, err := r.OriginalPrice("沒這個品項", 1)
	assert.ErrorIs(t, err, pricing.ErrItemNotFound)
}

package normalize_test

import (
	"testing"

	"github.com/chiawei-lin/kcouper/internal/normalize"
	"github.com/stretchr/testify/assert"
)

func TestName_StripsParenQualifiers(t *testing.T) {
	assert.Equal(t, "咔啦脆雞", normalize.Name("咔啦脆雞(辣)"))
	assert.Equal(t, "咔啦脆雞", normalize.Name("咔啦脆雞(不辣)"))
	assert.Equal(t, "香酥脆薯", normalize.Name("香酥脆薯(大)"))
	assert.Equal(t, "香酥脆薯", normalize.Name("香酥脆薯（小）"))
}

func TestName_StripsLeadingCountOnly(t *testing.T) {
	assert.Equal(t, "咔啦脆雞", normalize.Name("2塊咔啦脆雞"))
	assert.Equal(t, "原味蛋撻", normalize.Name("2入原味蛋撻"))
	assert.Equal(t, "上校雞塊", normalize.Name("4塊上校雞塊"))

	// A trailing count names a distinct SKU and must survive.
	assert.Equal(t, "咔啦脆雞2塊", normalize.Name("咔啦脆雞2塊(辣)"))
	assert.Equal(t, "咔啦脆雞2塊", normalize.Name("咔啦脆雞2塊"))
}

func TestName_StripsTimeWindowPrefix(t *testing.T) {
	assert.Equal(t, "香酥脆薯", normalize.Name("20:00後供應香酥脆薯"))
	assert.Equal(t, "雞汁風味飯", normalize.Name("20:00前供應雞汁風味飯"))
}

func TestName_UnwrapsOneParenPair(t *testing.T) {
	assert.Equal(t, "雙色轉轉QQ球", normalize.Name("(雙色轉轉QQ球)"))
	assert.Equal(t, "雙色轉轉QQ球", normalize.Name("（雙色轉轉QQ球）"))
}

func TestName_UnwrapDoesNotTouchInnerParens(t *testing.T) {
	// Wrapping parens with parens inside are not a wrapper.
	assert.Equal(t, "(A(B)", normalize.Name("(A(B)"))
}

func TestName_TrimsWhitespace(t *testing.T) {
	assert.Equal(t, "香酥脆薯", normalize.Name("  香酥脆薯 "))
}

func TestName_CombinedNoise(t *testing.T) {
	// Qualifier stripping can expose a wrapped or counted core; pipeline
	// passes run until nothing changes.
	assert.Equal(t, "咔啦脆雞", normalize.Name("(2塊咔啦脆雞)"))
	assert.Equal(t, "咔啦脆雞", normalize.Name("2塊咔啦脆雞(辣)"))
	assert.Equal(t, "香酥脆薯", normalize.Name("20:00後供應香酥脆薯(大)"))
}

func TestName_Idempotent(t *testing.T) {
	inputs := []string{
		"咔啦脆雞(辣)",
		"2塊咔啦脆雞",
		"(2塊咔啦脆雞)",
		"咔啦脆雞2塊(辣)",
		"20:00後供應香酥脆薯(大)",
		"（雙色轉轉QQ球）",
		"原味蛋撻",
		"",
	}
	for _, raw := range inputs {
		once := normalize.Name(raw)
		assert.Equal(t, once, normalize.Name(once), "input %q", raw)
	}
}

func TestName_EmptyAndNoise(t *testing.T) {
	assert.Equal(t, "", normalize.Name(""))
	assert.Equal(t, "", normalize.Name("  "))
	assert.Equal(t, "", normalize.Name("(辣)"))
}

func TestExcluded(t *testing.T) {
	assert.True(t, normalize.Excluded("大杯可樂"))
	assert.True(t, normalize.Excluded("七喜(中)"))
	assert.True(t, normalize.Excluded("玉米濃湯"))
	assert.True(t, normalize.Excluded("響應環保不需湯匙"))
	assert.True(t, normalize.Excluded("糖醋醬x2"))

	assert.False(t, normalize.Excluded("咔啦脆雞"))
	assert.False(t, normalize.Excluded("原味蛋撻"))
	assert.False(t, normalize.Excluded(""))
}

package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseIntSafe(t *testing.T) {
	assert.Equal(t, 42, ParseIntSafe("42"))
	assert.Equal(t, 42, ParseIntSafe(" 42 "))
	assert.Equal(t, 12, ParseIntSafe("12.0")) // số nguyên xuất dạng float
	assert.Equal(t, 0, ParseIntSafe("abc"))
	assert.Equal(t, 0, ParseIntSafe(""))
}

func TestParseFloatSafe(t *testing.T) {
	assert.InDelta(t, 150.5, ParseFloatSafe("150.5"), 0.001)
	assert.Equal(t, 0.0, ParseFloatSafe("n/a"))
	assert.Equal(t, 0.0, ParseFloatSafe(""))
}

func TestParseDateSafe(t *testing.T) {
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), ParseDateSafe("2024-01-15"))
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), ParseDateSafe("2024-01-15 10:30:00"))
	assert.True(t, ParseDateSafe("15/01/2024").IsZero())
	assert.True(t, ParseDateSafe("").IsZero())
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"wireless", "smart"}, SplitAndTrim("wireless, smart"))
	assert.Equal(t, []string{"a"}, SplitAndTrim(" a , , "))
	assert.Nil(t, SplitAndTrim(""))
	assert.Nil(t, SplitAndTrim("   "))
}

func TestDistinctSorted(t *testing.T) {
	assert.Equal(t, []string{"Beauty", "Clothing"}, DistinctSorted([]string{"Clothing", "Beauty", "Clothing", ""}))
	assert.Empty(t, DistinctSorted(nil))
}

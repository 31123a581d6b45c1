package domain

import (
	"fmt"
	"math"
)

// AmountDecimals is the number of decimal places of the native asset.
const AmountDecimals = 7

const unitsPerAsset = 10_000_000

// FormatAmount renders an amount of stroops as a decimal string with seven
// fractional digits, e.g. 11000000000 -> "1100.0000000".
func FormatAmount(v int64) string {
	sign := ""
	u := uint64(v)
	if v < 0 {
		sign = "-"
		u = uint64(-(v + 1)) + 1
	}
	return fmt.Sprintf("%s%d.%07d", sign, u/unitsPerAsset, u%unitsPerAsset)
}

// AddAmount returns a+b, or false when the sum would overflow.
func AddAmount(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, false
	}
	return a + b, true
}

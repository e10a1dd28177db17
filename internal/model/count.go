package model

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// NormalizeCount clamps v to a valid item count.
// NaN and infinities become 0, fractions are floored, negatives become 0.
func NormalizeCount(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v = math.Floor(v)
	if v <= 0 {
		return 0
	}
	if v >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(v)
}

// NormalizeNewCount is NormalizeCount with a floor of 1, used when adding items.
func NormalizeNewCount(v float64) int {
	return max(1, NormalizeCount(v))
}

// ParseCount reads the leading integer of raw the way a number field is read:
// leading whitespace and a sign are allowed, anything after the digits is ignored.
// It returns NaN when raw has no leading digits.
func ParseCount(raw string) float64 {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	sign := ""
	if s != "" && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return math.NaN()
	}
	// digits only; on overflow ParseFloat yields ±Inf, which NormalizeCount maps to 0
	v, _ := strconv.ParseFloat(sign+s[:end], 64)
	return v
}

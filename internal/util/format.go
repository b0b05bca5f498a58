package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCurrency rupees with thousands separators and no decimals: ₹1,234,567
func FormatCurrency(value float64) string {
	return "₹" + FormatThousands(value)
}

// FormatThousands rounds to an integer and groups digits by three
func FormatThousands(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "nan"
	}
	rounded := math.RoundToEven(value)
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	var digits string
	if rounded < math.MaxInt64 {
		digits = strconv.FormatInt(int64(rounded), 10)
	} else {
		digits = strconv.FormatFloat(rounded, 'f', 0, 64)
	}

	var b strings.Builder
	pre := len(digits) % 3
	if pre > 0 {
		b.WriteString(digits[:pre])
	}
	for i := pre; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + b.String()
}

// FormatPercent value already scaled to percent, one decimal: 42.5%
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// FormatNumber trims trailing zeros: 1.50 -> 1.5, 2.00 -> 2
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// FormatOptional FormatNumber, or "" for a missing value
func FormatOptional(value *float64) string {
	if value == nil {
		return ""
	}
	return FormatNumber(*value)
}

// Package format renders resource magnitudes and durations for display.
//
// Large magnitudes are always rounded up (ceiling) to the displayed
// precision, except past the last suffix where the mantissa is truncated.
package format

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

var suffixes = []string{"", "", "M", "B", "T", "Q", "QQ", "QQQ"}

var parseSuffixes = map[string]float64{
	"K":   1e3,
	"M":   1e6,
	"B":   1e9,
	"T":   1e12,
	"Q":   1e15,
	"QQ":  1e18,
	"QQQ": 1e21,
}

var (
	suffixedNumber = regexp.MustCompile(`^([0-9.]+)\s*([A-Z]*)$`)
	leadingNumber  = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)(E[+-]?\d+)?`)
)

// Number formats a magnitude with suffix notation (M, B, T, Q, QQ, QQQ)
func Number(num float64) string {
	if math.IsNaN(num) {
		return "NaN"
	}
	if math.IsInf(num, 0) {
		if num > 0 {
			return "∞"
		}
		return "-∞"
	}

	abs := math.Abs(num)
	if abs == 0 {
		return "0"
	}

	digits := int(math.Floor(math.Log10(abs)+1e-10)) + 1

	switch {
	case digits <= 6:
		if num == math.Trunc(num) {
			return humanize.Comma(int64(num))
		}
		return humanize.CommafWithDigits(num, 3)
	case digits == 7:
		return float(math.Ceil(num/1e4)/100) + "M"
	case digits == 8:
		return float(math.Ceil(num/1e5)/10) + "M"
	case digits <= 10:
		return float(math.Ceil(num/1e6)) + "M"
	}

	sIdx := (digits-11)/3 + 3
	if sIdx >= len(suffixes) {
		exponent := digits - 1
		base := num / math.Pow(10, float64(exponent))
		return float(math.Floor(base*100)/100) + "E" + strconv.Itoa(exponent)
	}

	d := math.Pow(10, float64(sIdx*3))
	if (digits-11)%3 == 0 {
		return float(math.Ceil(num/(d/10))/10) + suffixes[sIdx]
	}
	return float(math.Ceil(num/d)) + suffixes[sIdx]
}

// Parse reads a number that may carry commas and a magnitude suffix.
// Unreadable input yields 0.
func Parse(input string) float64 {
	str := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(input)), ",", "")
	if str == "" {
		return 0
	}

	m := suffixedNumber.FindStringSubmatch(str)
	if m == nil {
		prefix := leadingNumber.FindString(str)
		v, err := strconv.ParseFloat(prefix, 64)
		if err != nil {
			return 0
		}
		return v
	}

	val, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	if mult, ok := parseSuffixes[m[2]]; ok {
		return val * mult
	}
	return val
}

// Duration renders seconds as the two largest non-zero units, e.g. "2d 4h".
// Each unit is truncated, never rounded up into the next one.
func Duration(seconds float64) string {
	if math.IsNaN(seconds) {
		return "∞"
	}
	if seconds <= 0 {
		return "Ready!"
	}
	if math.IsInf(seconds, 1) {
		return "∞"
	}

	const (
		minute = 60
		hour   = 3600
		day    = 24 * hour
		month  = 30 * day
		year   = 365 * day
	)

	if seconds/year > 1e8 {
		return "Million ages"
	}

	// Each unit takes what is left after the larger ones
	var parts []string
	rem := seconds
	for _, u := range []struct {
		size float64
		unit string
	}{
		{year, "y"}, {month, "mo"}, {day, "d"}, {hour, "h"}, {minute, "m"},
	} {
		n := math.Floor(rem / u.size)
		rem -= n * u.size
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%.0f%s", n, u.unit))
		}
	}
	if secs := math.Floor(rem); secs > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%.0fs", secs))
	}

	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, " ")
}

func float(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

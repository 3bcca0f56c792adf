package formatter

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/athlog/internal/domain"
)

const kgToLbs = 2.20462

// FormatWeight converts a canonical kg value into the display unit.
func FormatWeight(kg float64, units domain.Units) string {
	v := kg
	if units == domain.UnitsImperial {
		v = kg * kgToLbs
	}
	return trimFloat(v) + " " + units.WeightAbbr()
}

// FormatDistance converts a canonical km value into the display unit.
func FormatDistance(km float64, units domain.Units) string {
	v := km
	if units == domain.UnitsImperial {
		v = km * domain.KmToMile
	}
	return trimFloat(v) + " " + units.DistanceAbbr()
}

func formatInt64Ptr(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatStringPtr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// trimFloat renders with up to two decimals, dropping trailing zeros.
func trimFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

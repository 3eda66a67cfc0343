package dataset

import (
	"regexp"
	"strconv"
	"strings"
)

// measureConversions maps measure units to milliliters. "part" is treated
// as one ounce.
var measureConversions = map[string]float64{
	"oz":       30.0,
	"shot":     45.0,
	"jigger":   45.0,
	"cup":      240.0,
	"tbsp":     15.0,
	"tsp":      5.0,
	"barspoon": 5.0,
	"ml":       1.0,
	"cl":       10.0,
	"dash":     1.0,
	"splash":   5.0,
	"drop":     0.05,
	"part":     30.0,
}

// Fraction measures ("1/2 cup", "1 1/2 oz") are tried first; a plain
// pattern would swallow the numerator and misread "1/2 oz" as one ounce.
var (
	fractionPattern = regexp.MustCompile(`^(?:(\d+(?:\.\d+)?)\s+)?(\d+)\s*/\s*(\d+)\s*([a-z]*)`)
	plainPattern    = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([a-z]*)`)
)

// ParseMeasure converts a free-form measure string ("1 1/2 oz", "2 dashes",
// "1/2 cup", "30 ml") to milliliters. A missing or unknown unit is read as
// ounces; an empty or unparseable measure yields zero.
func ParseMeasure(measure string) float64 {
	measure = strings.ToLower(strings.TrimSpace(measure))
	if measure == "" {
		return 0
	}

	var value float64
	var unit string

	if m := fractionPattern.FindStringSubmatch(measure); m != nil {
		if m[1] != "" {
			value, _ = strconv.ParseFloat(m[1], 64)
		}
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		if den == 0 {
			return 0
		}
		value += num / den
		unit = m[4]
	} else if m := plainPattern.FindStringSubmatch(measure); m != nil {
		value, _ = strconv.ParseFloat(m[1], 64)
		unit = m[2]
	} else {
		return 0
	}

	if value == 0 {
		return 0
	}
	factor, ok := measureConversions[singularUnit(unit)]
	if !ok {
		factor = measureConversions["oz"]
	}
	return value * factor
}

// singularUnit strips plural endings so "shots" and "dashes" resolve.
func singularUnit(unit string) string {
	if _, ok := measureConversions[unit]; ok {
		return unit
	}
	if trimmed := strings.TrimSuffix(unit, "es"); trimmed != unit {
		if _, ok := measureConversions[trimmed]; ok {
			return trimmed
		}
	}
	return strings.TrimSuffix(unit, "s")
}

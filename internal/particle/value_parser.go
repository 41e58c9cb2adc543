// Package particle parses the value strings used by field presets.
//
// A value string is either a fixed number ("1.5") or a range written the
// way the preset files write it ("[-0.6 0.6]"). A range with a single
// entry ("[2]") is treated as a fixed value.
package particle

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// ParseValue parses a value string from a preset.
//
// Supported formats:
//   - Fixed value: "1500" → min=1500, max=1500
//   - Range: "[0.7 0.9]" → min=0.7, max=0.9
//   - Single entry range: "[3]" → min=3, max=3
//
// Ranges written backwards ("[2 1]") are normalised so min <= max.
func ParseValue(s string) (min, max float64, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, fmt.Errorf("empty value")
	}

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return 0, 0, fmt.Errorf("unterminated range %q", s)
		}
		parts := strings.Fields(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]"))
		switch len(parts) {
		case 1:
			v, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return 0, 0, fmt.Errorf("invalid range value %q: %w", parts[0], err)
			}
			return v, v, nil
		case 2:
			min, err = strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return 0, 0, fmt.Errorf("invalid range min %q: %w", parts[0], err)
			}
			max, err = strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return 0, 0, fmt.Errorf("invalid range max %q: %w", parts[1], err)
			}
			if min > max {
				min, max = max, min
			}
			return min, max, nil
		default:
			return 0, 0, fmt.Errorf("range %q must have one or two values", s)
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return v, v, nil
}

// FormatValue is the inverse of ParseValue.
func FormatValue(min, max float64) string {
	if min == max {
		return strconv.FormatFloat(min, 'g', -1, 64)
	}
	return "[" + strconv.FormatFloat(min, 'g', -1, 64) + " " + strconv.FormatFloat(max, 'g', -1, 64) + "]"
}

// RandomInRange returns a uniform value in [min, max) drawn from rng.
// A nil rng uses the global source.
func RandomInRange(rng *rand.Rand, min, max float64) float64 {
	if min >= max {
		return min
	}
	if rng == nil {
		return min + rand.Float64()*(max-min)
	}
	return min + rng.Float64()*(max-min)
}

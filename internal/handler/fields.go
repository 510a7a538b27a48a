package handler

import (
	"math"
	"regexp"
)

// Simple email shape: exactly one '@', no whitespace, at least one '.'
// in the domain part.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func isEmail(s string) bool {
	return emailRe.MatchString(s)
}

// intValue coerces v to an integer. JSON decoding turns every number into
// float64, so integral floats count as integers; 7.5 does not, and bools
// never do.
func intValue(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float32:
		f := float64(n)
		if math.Trunc(f) == f {
			return int64(f), true
		}
	case float64:
		if math.Trunc(n) == n && !math.IsInf(n, 0) {
			return int64(n), true
		}
	}
	return 0, false
}

// numberValue coerces v to float64 if it is any numeric type.
func numberValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func stringValue(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// round3 rounds to 3 decimal places, half to even.
func round3(x float64) float64 {
	return math.RoundToEven(x*1000) / 1000
}

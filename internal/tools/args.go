package tools

import (
	"encoding/json"
	"strconv"
)

// stringArg reads a string argument, falling back when absent or empty.
func stringArg(args map[string]any, key, fallback string) string {
	if s, ok := args[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// numberArg coerces a JSON value to float64. Models are loose about numeric
// types, so ints, json.Number and numeric strings are all accepted.
func numberArg(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// intArg coerces a numeric argument to int, falling back when absent or not
// a number.
func intArg(args map[string]any, key string, fallback int) int {
	v, ok := args[key]
	if !ok {
		return fallback
	}
	f, ok := numberArg(v)
	if !ok {
		return fallback
	}
	return int(f)
}

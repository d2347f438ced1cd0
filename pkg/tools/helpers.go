package tools

import (
	"encoding/json"
	"strconv"
	"time"
)

func getString(input map[string]any, key, fallback string) string {
	value, ok := input[key]
	if !ok {
		return fallback
	}

	s, ok := value.(string)
	if !ok {
		return fallback
	}

	return s
}

func getMap(input map[string]any, key string) map[string]any {
	value, ok := input[key]
	if !ok {
		return map[string]any{}
	}

	m, ok := value.(map[string]any)
	if !ok {
		return map[string]any{}
	}

	return m
}

func getFloat(input map[string]any, key string, fallback float64) (float64, bool) {
	value, ok := input[key]
	if !ok {
		return fallback, true
	}

	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}

		return f, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}

		return f, true
	default:
		return 0, false
	}
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func nowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func errorPayload(message string) map[string]any {
	return map[string]any{"error": message}
}

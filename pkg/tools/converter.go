package tools

import (
	"context"
	"fmt"
	"math"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

type unitPair struct {
	from string
	to   string
}

// Fixed conversion table. Any pair not listed converts to the input value
// unchanged.
var conversions = map[unitPair]func(float64) float64{
	{"celsius", "fahrenheit"}: func(v float64) float64 { return v*9/5 + 32 },
	{"fahrenheit", "celsius"}: func(v float64) float64 { return (v - 32) * 5 / 9 },
	{"celsius", "kelvin"}:     func(v float64) float64 { return v + 273.15 },
	{"kelvin", "celsius"}:     func(v float64) float64 { return v - 273.15 },
	{"fahrenheit", "kelvin"}:  func(v float64) float64 { return (v-32)*5/9 + 273.15 },
	{"kelvin", "fahrenheit"}:  func(v float64) float64 { return (v-273.15)*9/5 + 32 },

	{"meters", "feet"}:        func(v float64) float64 { return v * 3.28084 },
	{"feet", "meters"}:        func(v float64) float64 { return v / 3.28084 },
	{"kilometers", "miles"}:   func(v float64) float64 { return v * 0.621371 },
	{"miles", "kilometers"}:   func(v float64) float64 { return v / 0.621371 },

	{"kilograms", "pounds"}: func(v float64) float64 { return v * 2.20462 },
	{"pounds", "kilograms"}: func(v float64) float64 { return v / 2.20462 },
}

type ConverterHandler struct{}

func NewConverterHandler() *ConverterHandler {
	return &ConverterHandler{}
}

func (h *ConverterHandler) ExecuteTool(ctx context.Context, input domain.ToolInput) (map[string]any, error) {
	value, ok := getFloat(input.Input, "value", 0)
	if !ok {
		return errorPayload("Conversion error: value must be a number"), nil
	}

	fromUnit := getString(input.Input, "from_unit", "")
	toUnit := getString(input.Input, "to_unit", "")

	result := value
	if convert, found := conversions[unitPair{from: fromUnit, to: toUnit}]; found {
		result = convert(value)
	}

	converted := math.Round(result*10000) / 10000

	return map[string]any{
		"original_value":  value,
		"from_unit":       fromUnit,
		"to_unit":         toUnit,
		"converted_value": converted,
		"message":         fmt.Sprintf("Converted %s %s to %s %s", formatNumber(value), fromUnit, formatNumber(converted), toUnit),
	}, nil
}

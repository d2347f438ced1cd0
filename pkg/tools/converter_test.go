package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

func TestConverterHandler_ExecuteTool(t *testing.T) {
	handler := NewConverterHandler()

	tests := []struct {
		name     string
		value    float64
		fromUnit string
		toUnit   string
		expected float64
	}{
		{name: "celsius to fahrenheit", value: 0, fromUnit: "celsius", toUnit: "fahrenheit", expected: 32},
		{name: "celsius to kelvin", value: 100, fromUnit: "celsius", toUnit: "kelvin", expected: 373.15},
		{name: "fahrenheit to celsius", value: 212, fromUnit: "fahrenheit", toUnit: "celsius", expected: 100},
		{name: "meters to feet", value: 10, fromUnit: "meters", toUnit: "feet", expected: 32.8084},
		{name: "kilograms to pounds", value: 2, fromUnit: "kilograms", toUnit: "pounds", expected: 4.4092},
		{name: "unmapped pair is identity", value: 42, fromUnit: "meters", toUnit: "kilograms", expected: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := handler.ExecuteTool(context.Background(), domain.ToolInput{
				Input: map[string]any{
					"value":     tt.value,
					"from_unit": tt.fromUnit,
					"to_unit":   tt.toUnit,
				},
			})
			require.NoError(t, err)
			require.NotContains(t, output, "error")

			assert.Equal(t, tt.expected, output["converted_value"])
			assert.Equal(t, tt.value, output["original_value"])
		})
	}
}

func TestConverterHandler_NonNumericValue(t *testing.T) {
	handler := NewConverterHandler()

	output, err := handler.ExecuteTool(context.Background(), domain.ToolInput{
		Input: map[string]any{
			"value":     "not a number",
			"from_unit": "celsius",
			"to_unit":   "kelvin",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Conversion error: value must be a number", output["error"])
}

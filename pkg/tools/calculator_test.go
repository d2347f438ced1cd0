package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

func TestCalculatorHandler_ExecuteTool(t *testing.T) {
	handler := NewCalculatorHandler()

	tests := []struct {
		name       string
		expression string
		expected   float64
		errorMsg   string
	}{
		{
			name:       "precedence",
			expression: "2 + 2 * 3",
			expected:   8,
		},
		{
			name:       "parentheses",
			expression: "(10 + 5) / 3",
			expected:   5,
		},
		{
			name:       "unary minus",
			expression: "-4 + 10",
			expected:   6,
		},
		{
			name:       "decimal literals",
			expression: "0.5 * 4",
			expected:   2,
		},
		{
			name:       "letters rejected",
			expression: "import os",
			errorMsg:   "Invalid expression. Only numbers and basic operators (+, -, *, /, parentheses) are allowed.",
		},
		{
			name:       "underscores rejected",
			expression: "__builtins__",
			errorMsg:   "Invalid expression. Only numbers and basic operators (+, -, *, /, parentheses) are allowed.",
		},
		{
			name:       "division by zero",
			expression: "1 / 0",
			errorMsg:   "Calculation error: division by zero",
		},
		{
			name:       "unbalanced parenthesis",
			expression: "(1 + 2",
			errorMsg:   "Calculation error: missing closing parenthesis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := handler.ExecuteTool(context.Background(), domain.ToolInput{
				Input: map[string]any{"expression": tt.expression},
			})
			require.NoError(t, err)

			if tt.errorMsg != "" {
				assert.Equal(t, tt.errorMsg, output["error"])
				return
			}

			require.NotContains(t, output, "error")
			assert.Equal(t, tt.expected, output["result"])
			assert.Equal(t, tt.expression, output["expression"])
		})
	}
}

func TestEvaluateExpression_TrailingGarbage(t *testing.T) {
	_, err := evaluateExpression("1 + 2 )")
	require.Error(t, err)
}

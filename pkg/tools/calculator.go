package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

const calculatorAllowedChars = "0123456789+-*/.() "

// CalculatorHandler evaluates arithmetic expressions. The character allow-list
// mirrors the public contract (reject anything outside digits and basic
// operators before evaluation); the actual guarantee comes from the recursive
// descent parser in expr.go, which cannot express anything but arithmetic.
type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

func (h *CalculatorHandler) ExecuteTool(ctx context.Context, input domain.ToolInput) (map[string]any, error) {
	expression := getString(input.Input, "expression", "")

	for _, ch := range expression {
		if !strings.ContainsRune(calculatorAllowedChars, ch) {
			return errorPayload("Invalid expression. Only numbers and basic operators (+, -, *, /, parentheses) are allowed."), nil
		}
	}

	result, err := evaluateExpression(expression)
	if err != nil {
		return errorPayload(fmt.Sprintf("Calculation error: %s", err.Error())), nil
	}

	return map[string]any{
		"expression": expression,
		"result":     result,
		"message":    fmt.Sprintf("Calculation completed: %s = %s", expression, formatNumber(result)),
	}, nil
}

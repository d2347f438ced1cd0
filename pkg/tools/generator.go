package tools

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

var placeholderPattern = regexp.MustCompile(`\{([^{}]*)\}`)

// GeneratorHandler substitutes {variable} placeholders in a template. Every
// braced group counts as a placeholder, and a missing variable fails the
// whole generation; no partial output is returned.
type GeneratorHandler struct{}

func NewGeneratorHandler() *GeneratorHandler {
	return &GeneratorHandler{}
}

func (h *GeneratorHandler) ExecuteTool(ctx context.Context, input domain.ToolInput) (map[string]any, error) {
	template := getString(input.Input, "template", "Hello, {name}!")
	variables := getMap(input.Input, "variables")

	var (
		missing    string
		hasMissing bool
	)

	generated := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := strings.Trim(match, "{}")

		value, ok := variables[name]
		if !ok {
			if !hasMissing {
				missing = name
				hasMissing = true
			}

			return match
		}

		return fmt.Sprintf("%v", value)
	})

	if hasMissing {
		return errorPayload(fmt.Sprintf("Generation error: missing variable %q", missing)), nil
	}

	return map[string]any{
		"template":       template,
		"variables":      variables,
		"generated_text": generated,
		"message":        "Text generated successfully!",
	}, nil
}

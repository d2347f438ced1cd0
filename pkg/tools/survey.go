package tools

import (
	"context"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

type SurveyHandler struct{}

func NewSurveyHandler() *SurveyHandler {
	return &SurveyHandler{}
}

func (h *SurveyHandler) ExecuteTool(ctx context.Context, input domain.ToolInput) (map[string]any, error) {
	responses := getMap(input.Input, "responses")

	rating, ok := getFloat(input.Input, "rating", 0)
	if !ok {
		rating = 0
	}

	return map[string]any{
		"responses": responses,
		"rating":    rating,
		"message":   "Survey completed! Thank you for your feedback.",
		"timestamp": nowTimestamp(),
	}, nil
}

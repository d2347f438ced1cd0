package tools

import (
	"context"
	"fmt"
	"math"
	"reflect"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

type QuizHandler struct{}

func NewQuizHandler() *QuizHandler {
	return &QuizHandler{}
}

func (h *QuizHandler) ExecuteTool(ctx context.Context, input domain.ToolInput) (map[string]any, error) {
	answers := getMap(input.Input, "answers")
	correctAnswers := getMap(input.Input, "correct_answers")

	score := 0
	total := len(correctAnswers)

	for question, correct := range correctAnswers {
		if answer, ok := answers[question]; ok && reflect.DeepEqual(answer, correct) {
			score++
		}
	}

	percentage := 0.0
	if total > 0 {
		percentage = math.Round(float64(score)/float64(total)*1000) / 10
	}

	return map[string]any{
		"score":      score,
		"total":      total,
		"percentage": percentage,
		"message":    fmt.Sprintf("Quiz completed! You scored %d/%d (%.1f%%)", score, total, percentage),
		"timestamp":  nowTimestamp(),
	}, nil
}

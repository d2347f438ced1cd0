// Package tools implements the handlers behind standalone tools: single
// operation mini-apps that users publish and run outside any workflow.
package tools

import (
	"github.com/pibuilder/pibuilder/pkg/domain"
)

type Registry struct {
	selector    domain.ToolSelector
	definitions []domain.ToolDefinition
}

// NewRegistry builds the tool handler registry at process start. The selector
// is read-only afterwards.
func NewRegistry() *Registry {
	selector := domain.NewToolSelector()

	selector.Register(domain.ToolTypeForm, NewFormHandler())
	selector.Register(domain.ToolTypeCalculator, NewCalculatorHandler())
	selector.Register(domain.ToolTypeConverter, NewConverterHandler())
	selector.Register(domain.ToolTypeGenerator, NewGeneratorHandler())
	selector.Register(domain.ToolTypeSurvey, NewSurveyHandler())
	selector.Register(domain.ToolTypeQuiz, NewQuizHandler())
	selector.Register(domain.ToolTypePoll, NewPollHandler())
	selector.Register(domain.ToolTypeScheduler, NewSchedulerHandler())
	selector.Register(domain.ToolTypeTracker, NewTrackerHandler())
	selector.Register(domain.ToolTypeValidator, NewValidatorHandler())

	return &Registry{
		selector:    selector,
		definitions: Definitions,
	}
}

func (r *Registry) Selector() domain.ToolSelector {
	return r.selector
}

func (r *Registry) Definitions() []domain.ToolDefinition {
	return r.definitions
}

package tools

import (
	"github.com/pibuilder/pibuilder/pkg/domain"
)

var Definitions = []domain.ToolDefinition{
	{
		Type:        domain.ToolTypeForm,
		Name:        "Form",
		Description: "Collect structured input through configurable fields",
	},
	{
		Type:        domain.ToolTypeCalculator,
		Name:        "Calculator",
		Description: "Evaluate arithmetic expressions with +, -, *, / and parentheses",
	},
	{
		Type:        domain.ToolTypeConverter,
		Name:        "Unit Converter",
		Description: "Convert between temperature, length and weight units",
	},
	{
		Type:        domain.ToolTypeGenerator,
		Name:        "Text Generator",
		Description: "Generate text from a template with {variable} placeholders",
	},
	{
		Type:        domain.ToolTypeSurvey,
		Name:        "Survey",
		Description: "Collect feedback responses and a rating",
	},
	{
		Type:        domain.ToolTypeQuiz,
		Name:        "Quiz",
		Description: "Score submitted answers against the correct ones",
	},
	{
		Type:        domain.ToolTypePoll,
		Name:        "Poll",
		Description: "Record a single vote per submission",
	},
	{
		Type:        domain.ToolTypeScheduler,
		Name:        "Event Scheduler",
		Description: "Schedule an event with a date, time and attendee list",
	},
	{
		Type:        domain.ToolTypeTracker,
		Name:        "Activity Tracker",
		Description: "Track an activity value with a unit and notes",
	},
	{
		Type:        domain.ToolTypeValidator,
		Name:        "Data Validator",
		Description: "Validate emails, phone numbers and URLs",
	},
}

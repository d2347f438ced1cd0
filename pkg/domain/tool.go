package domain

import (
	"errors"
	"time"
)

var (
	ErrToolNotFound      = errors.New("tool not found")
	ErrToolNotExecutable = errors.New("tool not available for execution")
)

type ToolType string

const (
	ToolTypeForm       ToolType = "form"
	ToolTypeCalculator ToolType = "calculator"
	ToolTypeConverter  ToolType = "converter"
	ToolTypeGenerator  ToolType = "generator"
	ToolTypeSurvey     ToolType = "survey"
	ToolTypeQuiz       ToolType = "quiz"
	ToolTypePoll       ToolType = "poll"
	ToolTypeScheduler  ToolType = "scheduler"
	ToolTypeTracker    ToolType = "tracker"
	ToolTypeValidator  ToolType = "validator"
)

// Tool is a standalone, independently publishable single-operation unit,
// distinct from a workflow node.
type Tool struct {
	ID          string      `json:"id" bson:"id"`
	CreatorID   string      `json:"creator_id" bson:"creator_id"`
	CreatorName string      `json:"creator_name" bson:"creator_name"`
	Name        string      `json:"name" bson:"name"`
	Slug        string      `json:"slug" bson:"slug"`
	Description string      `json:"description" bson:"description"`
	Type        ToolType    `json:"type" bson:"type"`
	Fields      []ToolField `json:"fields" bson:"fields"`
	Published   bool        `json:"published" bson:"published"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`
}

// CanBeExecutedBy reports whether the caller may execute the tool. Published
// tools are public; unpublished tools are executable only by their creator.
func (t Tool) CanBeExecutedBy(callerID string) bool {
	if t.Published {
		return true
	}

	return callerID != "" && callerID == t.CreatorID
}

// ToolField is one field of a form tool's rendering configuration.
type ToolField struct {
	ID    string `json:"id" bson:"id"`
	Label string `json:"label" bson:"label"`
	Type  string `json:"type" bson:"type"`
}

// ToolExecution is the append-only record of one tool invocation. It is never
// mutated after creation.
type ToolExecution struct {
	ID        string         `json:"id" bson:"id"`
	ToolID    string         `json:"tool_id" bson:"tool_id"`
	UserID    string         `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Input     map[string]any `json:"input" bson:"input"`
	Output    map[string]any `json:"output" bson:"output"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
}

type ToolDefinition struct {
	Type        ToolType `json:"type" bson:"type"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
}

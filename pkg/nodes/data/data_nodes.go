package data

import (
	"context"
	"fmt"
	"time"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

const (
	defaultCodeLanguage = "javascript"

	defaultSetProperty = "new_field"
	defaultSetValue    = "default_value"
)

// CodeNode simulates code execution. It never runs the configured snippet;
// sandboxed execution is out of scope for the engine.
type CodeNode struct{}

func NewCodeNode() *CodeNode {
	return &CodeNode{}
}

func (n *CodeNode) ExecuteNode(ctx context.Context, input domain.NodeInput) (domain.NodeOutput, error) {
	language := input.Node.Config.GetString("language", defaultCodeLanguage)

	return domain.NodeOutput{
		Status: domain.NodeResultStatusSuccess,
		Data: map[string]any{
			"message":       fmt.Sprintf("Executed %s code", language),
			"result":        map[string]any{"simulated_execution": true},
			"original_data": input.TriggerPayload,
		},
	}, nil
}

// SetNode copies the payload and sets one property on the copy. The caller's
// payload map is never mutated.
type SetNode struct{}

func NewSetNode() *SetNode {
	return &SetNode{}
}

func (n *SetNode) ExecuteNode(ctx context.Context, input domain.NodeInput) (domain.NodeOutput, error) {
	propertyName := input.Node.Config.GetString("property_name", defaultSetProperty)

	value, ok := input.Node.Config["value"]
	if !ok {
		value = defaultSetValue
	}

	output := make(map[string]any, len(input.TriggerPayload)+1)
	for key, v := range input.TriggerPayload {
		output[key] = v
	}

	output[propertyName] = value

	return domain.NodeOutput{
		Status: domain.NodeResultStatusSuccess,
		Data:   output,
	}, nil
}

// DateNode reports the current timestamp. The configured operation and format
// are accepted but not interpreted.
type DateNode struct {
	now func() time.Time
}

func NewDateNode() *DateNode {
	return &DateNode{now: time.Now}
}

func (n *DateNode) ExecuteNode(ctx context.Context, input domain.NodeInput) (domain.NodeOutput, error) {
	return domain.NodeOutput{
		Status: domain.NodeResultStatusSuccess,
		Data: map[string]any{
			"formatted_date": n.now().Format(time.RFC3339),
			"original_data":  input.TriggerPayload,
		},
	}, nil
}

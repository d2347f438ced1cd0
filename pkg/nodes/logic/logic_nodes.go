package logic

import (
	"context"
	"fmt"
	"strings"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

// IfNode evaluates its condition with a naive substring check: the condition
// is met when the configured string contains "true" or "yes", case-insensitive.
// This is not a boolean expression evaluator.
type IfNode struct{}

func NewIfNode() *IfNode {
	return &IfNode{}
}

func (n *IfNode) ExecuteNode(ctx context.Context, input domain.NodeInput) (domain.NodeOutput, error) {
	condition := strings.ToLower(input.Node.Config.GetString("condition", "true"))
	conditionMet := strings.Contains(condition, "true") || strings.Contains(condition, "yes")

	return domain.NodeOutput{
		Status: domain.NodeResultStatusSuccess,
		Data: map[string]any{
			"condition_met": conditionMet,
			"original_data": input.TriggerPayload,
		},
	}, nil
}

type SwitchNode struct{}

func NewSwitchNode() *SwitchNode {
	return &SwitchNode{}
}

func (n *SwitchNode) ExecuteNode(ctx context.Context, input domain.NodeInput) (domain.NodeOutput, error) {
	value := input.Node.Config.GetString("value", "default")

	return domain.NodeOutput{
		Status: domain.NodeResultStatusSuccess,
		Data: map[string]any{
			"selected_case": value,
			"original_data": input.TriggerPayload,
		},
	}, nil
}

var waitSecondsPerUnit = map[string]int{
	"seconds": 1,
	"minutes": 60,
	"hours":   3600,
	"days":    86400,
}

// WaitNode computes the configured wait duration but never sleeps; no node
// invocation suspends.
type WaitNode struct{}

func NewWaitNode() *WaitNode {
	return &WaitNode{}
}

func (n *WaitNode) ExecuteNode(ctx context.Context, input domain.NodeInput) (domain.NodeOutput, error) {
	duration := input.Node.Config.GetInt("duration", 1)
	unit := input.Node.Config.GetString("unit", "seconds")

	factor, ok := waitSecondsPerUnit[unit]
	if !ok {
		factor = 1
	}

	return domain.NodeOutput{
		Status: domain.NodeResultStatusSuccess,
		Data: map[string]any{
			"message":       fmt.Sprintf("Waited for %d %s", duration, unit),
			"wait_seconds":  duration * factor,
			"original_data": input.TriggerPayload,
		},
	}, nil
}

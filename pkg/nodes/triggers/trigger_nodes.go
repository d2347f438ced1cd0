package triggers

import (
	"context"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

// TriggerNode handles the schedule, webhook and manual trigger types. Triggers
// never transform data: they report status triggered and pass the payload
// through unchanged. Nothing here fires on a timer or listens on a path; the
// webhook ingress invokes the workflow executor directly.
type TriggerNode struct{}

func NewTriggerNode() *TriggerNode {
	return &TriggerNode{}
}

func (n *TriggerNode) ExecuteNode(ctx context.Context, input domain.NodeInput) (domain.NodeOutput, error) {
	return domain.NodeOutput{
		Status: domain.NodeResultStatusTriggered,
		Data:   input.TriggerPayload,
	}, nil
}

package utility

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

const (
	defaultRenameFrom = "old_field"
	defaultRenameTo   = "new_field"

	defaultPaymentAmount = 1
	defaultPaymentMemo   = "Payment from Pi No-Code Builder"

	defaultPiDataOperation = "read"
	defaultPiDataKey       = "data_key"
)

type NoopNode struct{}

func NewNoopNode() *NoopNode {
	return &NoopNode{}
}

func (n *NoopNode) ExecuteNode(ctx context.Context, input domain.NodeInput) (domain.NodeOutput, error) {
	return domain.NodeOutput{
		Status: domain.NodeResultStatusSuccess,
		Data:   input.TriggerPayload,
	}, nil
}

// RenameNode moves a value from one key to another on a copy of the payload.
// When the source key is absent the payload passes through unchanged.
type RenameNode struct{}

func NewRenameNode() *RenameNode {
	return &RenameNode{}
}

func (n *RenameNode) ExecuteNode(ctx context.Context, input domain.NodeInput) (domain.NodeOutput, error) {
	fromField := input.Node.Config.GetString("from_field", defaultRenameFrom)
	toField := input.Node.Config.GetString("to_field", defaultRenameTo)

	value, exists := input.TriggerPayload[fromField]
	if !exists {
		return domain.NodeOutput{
			Status: domain.NodeResultStatusSuccess,
			Data:   input.TriggerPayload,
		}, nil
	}

	output := make(map[string]any, len(input.TriggerPayload))
	for key, v := range input.TriggerPayload {
		if key == fromField {
			continue
		}

		output[key] = v
	}

	output[toField] = value

	return domain.NodeOutput{
		Status: domain.NodeResultStatusSuccess,
		Data:   output,
	}, nil
}

// PiPaymentNode is simulated: it reports the payment it would create and does
// not call the payment gateway.
type PiPaymentNode struct{}

func NewPiPaymentNode() *PiPaymentNode {
	return &PiPaymentNode{}
}

func (n *PiPaymentNode) ExecuteNode(ctx context.Context, input domain.NodeInput) (domain.NodeOutput, error) {
	amount := input.Node.Config.GetFloat("amount", defaultPaymentAmount)
	memo := input.Node.Config.GetString("memo", defaultPaymentMemo)

	return domain.NodeOutput{
		Status: domain.NodeResultStatusSuccess,
		Data: map[string]any{
			"message":         fmt.Sprintf("Pi payment of %s π with memo: %s", strconv.FormatFloat(amount, 'f', -1, 64), memo),
			"payment_created": true,
			"original_data":   input.TriggerPayload,
		},
	}, nil
}

type PiDataNode struct{}

func NewPiDataNode() *PiDataNode {
	return &PiDataNode{}
}

func (n *PiDataNode) ExecuteNode(ctx context.Context, input domain.NodeInput) (domain.NodeOutput, error) {
	operation := input.Node.Config.GetString("operation", defaultPiDataOperation)
	key := input.Node.Config.GetString("key", defaultPiDataKey)

	return domain.NodeOutput{
		Status: domain.NodeResultStatusSuccess,
		Data: map[string]any{
			"message":       fmt.Sprintf("Pi blockchain %s operation for key: %s", operation, key),
			"operation":     operation,
			"key":           key,
			"original_data": input.TriggerPayload,
		},
	}, nil
}

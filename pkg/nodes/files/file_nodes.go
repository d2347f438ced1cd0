package files

import (
	"context"
	"fmt"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

// FileOperationNode covers the csv and json node types. Both only report the
// configured operation; no parsing is performed.
type FileOperationNode struct {
	label            string
	defaultOperation string
}

func NewCSVNode() *FileOperationNode {
	return &FileOperationNode{label: "CSV", defaultOperation: "toJson"}
}

func NewJSONNode() *FileOperationNode {
	return &FileOperationNode{label: "JSON", defaultOperation: "parse"}
}

func (n *FileOperationNode) ExecuteNode(ctx context.Context, input domain.NodeInput) (domain.NodeOutput, error) {
	operation := input.Node.Config.GetString("operation", n.defaultOperation)

	return domain.NodeOutput{
		Status: domain.NodeResultStatusSuccess,
		Data: map[string]any{
			"message":       fmt.Sprintf("%s %s operation", n.label, operation),
			"original_data": input.TriggerPayload,
		},
	}, nil
}

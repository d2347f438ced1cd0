package domain

import (
	"context"
	"errors"
	"fmt"
)

var ErrNodeTypeNotFound = errors.New("node type not found")

// NodeInput carries everything a node handler receives: the node as stored in
// the workflow and the run's trigger payload. Every node of a run receives the
// same trigger payload.
type NodeInput struct {
	Node           Node
	TriggerPayload map[string]any
}

// NodeExecutor is one entry of the node type registry. Handlers are pure over
// (config, trigger payload) apart from reading the clock; a returned error is
// recorded as a failed NodeResult and never aborts the run.
type NodeExecutor interface {
	ExecuteNode(ctx context.Context, input NodeInput) (NodeOutput, error)
}

type NodeSelector interface {
	Register(nodeType NodeType, executor NodeExecutor)
	Select(ctx context.Context, nodeType NodeType) (NodeExecutor, error)
}

type nodeSelector struct {
	executorsByType map[NodeType]NodeExecutor
}

// NewNodeSelector returns an empty registry. It is populated once during
// process start and read-only afterwards.
func NewNodeSelector() NodeSelector {
	return &nodeSelector{
		executorsByType: make(map[NodeType]NodeExecutor),
	}
}

func (s *nodeSelector) Register(nodeType NodeType, executor NodeExecutor) {
	s.executorsByType[nodeType] = executor
}

func (s *nodeSelector) Select(ctx context.Context, nodeType NodeType) (NodeExecutor, error) {
	executor, ok := s.executorsByType[nodeType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeTypeNotFound, nodeType)
	}

	return executor, nil
}

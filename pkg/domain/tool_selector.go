package domain

import (
	"context"
	"errors"
	"fmt"
)

var ErrToolTypeNotFound = errors.New("tool type not found")

type ToolInput struct {
	Tool  Tool
	Input map[string]any
}

// ToolHandler computes the output payload of one tool invocation. Handlers
// report domain failures (bad expression, missing variable) as an {error: ...}
// payload rather than an error value; both are persisted as normal
// ToolExecution records.
type ToolHandler interface {
	ExecuteTool(ctx context.Context, input ToolInput) (map[string]any, error)
}

type ToolSelector interface {
	Register(toolType ToolType, handler ToolHandler)
	Select(ctx context.Context, toolType ToolType) (ToolHandler, error)
}

type toolSelector struct {
	handlersByType map[ToolType]ToolHandler
}

func NewToolSelector() ToolSelector {
	return &toolSelector{
		handlersByType: make(map[ToolType]ToolHandler),
	}
}

func (s *toolSelector) Register(toolType ToolType, handler ToolHandler) {
	s.handlersByType[toolType] = handler
}

func (s *toolSelector) Select(ctx context.Context, toolType ToolType) (ToolHandler, error) {
	handler, ok := s.handlersByType[toolType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolTypeNotFound, toolType)
	}

	return handler, nil
}

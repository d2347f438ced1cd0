package tools

import (
	"context"
	"fmt"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

// FormHandler echoes the submitted fields back. Validation of field shapes is
// left to the tool definition schema.
type FormHandler struct{}

func NewFormHandler() *FormHandler {
	return &FormHandler{}
}

func (h *FormHandler) ExecuteTool(ctx context.Context, input domain.ToolInput) (map[string]any, error) {
	return map[string]any{
		"submitted_data": input.Input,
		"message":        fmt.Sprintf("Form %q submitted successfully!", input.Tool.Name),
		"timestamp":      nowTimestamp(),
	}, nil
}

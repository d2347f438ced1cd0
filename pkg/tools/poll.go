package tools

import (
	"context"
	"fmt"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

type PollHandler struct{}

func NewPollHandler() *PollHandler {
	return &PollHandler{}
}

func (h *PollHandler) ExecuteTool(ctx context.Context, input domain.ToolInput) (map[string]any, error) {
	vote := getString(input.Input, "vote", "")
	voterID := getString(input.Input, "voter_id", "anonymous")

	return map[string]any{
		"vote":      vote,
		"voter_id":  voterID,
		"message":   fmt.Sprintf("Thank you for voting for: %s", vote),
		"timestamp": nowTimestamp(),
	}, nil
}

package tools

import (
	"context"
	"fmt"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

type TrackerHandler struct{}

func NewTrackerHandler() *TrackerHandler {
	return &TrackerHandler{}
}

func (h *TrackerHandler) ExecuteTool(ctx context.Context, input domain.ToolInput) (map[string]any, error) {
	activity := getString(input.Input, "activity", "")
	unit := getString(input.Input, "unit", "")
	notes := getString(input.Input, "notes", "")

	value, ok := input.Input["value"]
	if !ok {
		value = 0
	}

	return map[string]any{
		"activity":  activity,
		"value":     value,
		"unit":      unit,
		"notes":     notes,
		"message":   fmt.Sprintf("Tracked: %v %s for %s", value, unit, activity),
		"timestamp": nowTimestamp(),
	}, nil
}

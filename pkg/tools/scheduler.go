package tools

import (
	"context"
	"fmt"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

type SchedulerHandler struct{}

func NewSchedulerHandler() *SchedulerHandler {
	return &SchedulerHandler{}
}

func (h *SchedulerHandler) ExecuteTool(ctx context.Context, input domain.ToolInput) (map[string]any, error) {
	eventName := getString(input.Input, "event_name", "")
	eventDate := getString(input.Input, "event_date", "")
	eventTime := getString(input.Input, "event_time", "")

	attendees, ok := input.Input["attendees"].([]any)
	if !ok {
		attendees = []any{}
	}

	return map[string]any{
		"event_name": eventName,
		"event_date": eventDate,
		"event_time": eventTime,
		"attendees":  attendees,
		"message":    fmt.Sprintf("Event %q scheduled for %s at %s", eventName, eventDate, eventTime),
		"timestamp":  nowTimestamp(),
	}, nil
}

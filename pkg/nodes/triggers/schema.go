package triggers

import (
	"encoding/json"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

var Definitions = []domain.NodeDefinition{
	{
		Type:        domain.NodeTypeSchedule,
		Name:        "Schedule Trigger",
		Description: "Activates the workflow at a specific time interval",
		Category:    domain.NodeCategoryTrigger,
		ConfigSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"frequency": {"type": "string", "enum": ["minutes", "hours", "days", "weeks"]},
				"interval": {"type": "number", "minimum": 1}
			}
		}`),
	},
	{
		Type:        domain.NodeTypeWebhook,
		Name:        "Webhook Trigger",
		Description: "Listens for incoming HTTP requests to trigger workflows",
		Category:    domain.NodeCategoryTrigger,
		ConfigSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"method": {"type": "string", "enum": ["GET", "POST", "PUT"]},
				"path": {"type": "string"}
			}
		}`),
	},
	{
		Type:         domain.NodeTypeManual,
		Name:         "Manual Trigger",
		Description:  "Allows manual execution of the workflow",
		Category:     domain.NodeCategoryTrigger,
		ConfigSchema: json.RawMessage(`{"type": "object"}`),
	},
}

package logic

import (
	"encoding/json"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

var Definitions = []domain.NodeDefinition{
	{
		Type:        domain.NodeTypeIf,
		Name:        "IF",
		Description: "Conditional branching based on data",
		Category:    domain.NodeCategoryLogic,
		ConfigSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"condition": {"type": "string"}
			}
		}`),
	},
	{
		Type:        domain.NodeTypeSwitch,
		Name:        "Switch",
		Description: "Multiple conditional branching",
		Category:    domain.NodeCategoryLogic,
		ConfigSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"value": {"type": "string"}
			}
		}`),
	},
	{
		Type:        domain.NodeTypeWait,
		Name:        "Wait",
		Description: "Pause workflow execution",
		Category:    domain.NodeCategoryLogic,
		ConfigSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"duration": {"type": "number", "minimum": 0},
				"unit": {"type": "string", "enum": ["seconds", "minutes", "hours", "days"]}
			}
		}`),
	},
}

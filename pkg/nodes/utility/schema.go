package utility

import (
	"encoding/json"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

var Definitions = []domain.NodeDefinition{
	{
		Type:         domain.NodeTypeNoop,
		Name:         "No Operation",
		Description:  "Placeholder node that does nothing",
		Category:     domain.NodeCategoryUtility,
		ConfigSchema: json.RawMessage(`{"type": "object"}`),
	},
	{
		Type:        domain.NodeTypeRename,
		Name:        "Rename",
		Description: "Rename fields in data",
		Category:    domain.NodeCategoryUtility,
		ConfigSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"from_field": {"type": "string"},
				"to_field": {"type": "string"}
			}
		}`),
	},
	{
		Type:        domain.NodeTypePiPayment,
		Name:        "Pi Payment",
		Description: "Create Pi Network payments",
		Category:    domain.NodeCategoryUtility,
		ConfigSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"amount": {"type": "number", "minimum": 0},
				"memo": {"type": "string"}
			}
		}`),
	},
	{
		Type:        domain.NodeTypePiData,
		Name:        "Pi Blockchain",
		Description: "Read/write to Pi Blockchain",
		Category:    domain.NodeCategoryUtility,
		ConfigSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"operation": {"type": "string", "enum": ["read", "write"]},
				"key": {"type": "string"}
			}
		}`),
	},
}

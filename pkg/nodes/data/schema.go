package data

import (
	"encoding/json"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

var Definitions = []domain.NodeDefinition{
	{
		Type:        domain.NodeTypeCode,
		Name:        "Code",
		Description: "Execute custom JavaScript or Python code",
		Category:    domain.NodeCategoryData,
		ConfigSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"language": {"type": "string", "enum": ["javascript", "python"]},
				"code": {"type": "string"}
			}
		}`),
	},
	{
		Type:        domain.NodeTypeSet,
		Name:        "Set",
		Description: "Set values in JSON data",
		Category:    domain.NodeCategoryData,
		ConfigSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"property_name": {"type": "string"}
			}
		}`),
	},
	{
		Type:        domain.NodeTypeDate,
		Name:        "Date & Time",
		Description: "Format and manipulate dates",
		Category:    domain.NodeCategoryData,
		ConfigSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"operation": {"type": "string"},
				"format": {"type": "string"}
			}
		}`),
	},
}

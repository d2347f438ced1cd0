package files

import (
	"encoding/json"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

var Definitions = []domain.NodeDefinition{
	{
		Type:        domain.NodeTypeCSV,
		Name:        "CSV",
		Description: "Parse and generate CSV data",
		Category:    domain.NodeCategoryFile,
		ConfigSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"operation": {"type": "string"}
			}
		}`),
	},
	{
		Type:        domain.NodeTypeJSON,
		Name:        "JSON",
		Description: "Parse and generate JSON data",
		Category:    domain.NodeCategoryFile,
		ConfigSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"operation": {"type": "string"}
			}
		}`),
	},
}

package apps

import (
	"encoding/json"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

var Definitions = []domain.NodeDefinition{
	{
		Type:        domain.NodeTypeSlack,
		Name:        "Slack",
		Description: "Integration with Slack",
		Category:    domain.NodeCategoryApp,
		ConfigSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"channel": {"type": "string"},
				"message": {"type": "string"}
			}
		}`),
	},
	{
		Type:        domain.NodeTypeEmail,
		Name:        "Email",
		Description: "Integration with Email",
		Category:    domain.NodeCategoryApp,
		ConfigSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"to": {"type": "string"},
				"subject": {"type": "string"},
				"body": {"type": "string"}
			}
		}`),
	},
	{
		Type:        domain.NodeTypeHTTP,
		Name:        "HTTP Request",
		Description: "Integration with HTTP Request",
		Category:    domain.NodeCategoryApp,
		ConfigSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"url": {"type": "string"},
				"method": {"type": "string", "enum": ["GET", "POST", "PUT", "PATCH", "DELETE"]}
			}
		}`),
	},
	{
		Type:        domain.NodeTypePiAuth,
		Name:        "Pi Authentication",
		Description: "Integration with Pi Authentication",
		Category:    domain.NodeCategoryApp,
		ConfigSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"scopes": {"type": "string"}
			}
		}`),
	},
}

package domain

import (
	"encoding/json"
	"strconv"
)

type NodeType string
type NodeCategory string

const (
	NodeTypeSchedule NodeType = "schedule"
	NodeTypeWebhook  NodeType = "webhook"
	NodeTypeManual   NodeType = "manual"

	NodeTypeSlack  NodeType = "slack"
	NodeTypeEmail  NodeType = "email"
	NodeTypeHTTP   NodeType = "http"
	NodeTypePiAuth NodeType = "pi-auth"

	NodeTypeCode NodeType = "code"
	NodeTypeSet  NodeType = "set"
	NodeTypeDate NodeType = "date"

	NodeTypeIf     NodeType = "if"
	NodeTypeSwitch NodeType = "switch"
	NodeTypeWait   NodeType = "wait"

	NodeTypeCSV  NodeType = "csv"
	NodeTypeJSON NodeType = "json"

	NodeTypeNoop      NodeType = "noop"
	NodeTypeRename    NodeType = "rename"
	NodeTypePiPayment NodeType = "pi-payment"
	NodeTypePiData    NodeType = "pi-data"
)

const (
	NodeCategoryTrigger NodeCategory = "trigger"
	NodeCategoryApp     NodeCategory = "app"
	NodeCategoryData    NodeCategory = "data"
	NodeCategoryLogic   NodeCategory = "logic"
	NodeCategoryFile    NodeCategory = "file"
	NodeCategoryUtility NodeCategory = "utility"
)

var categoriesByNodeType = map[NodeType]NodeCategory{
	NodeTypeSchedule:  NodeCategoryTrigger,
	NodeTypeWebhook:   NodeCategoryTrigger,
	NodeTypeManual:    NodeCategoryTrigger,
	NodeTypeSlack:     NodeCategoryApp,
	NodeTypeEmail:     NodeCategoryApp,
	NodeTypeHTTP:      NodeCategoryApp,
	NodeTypePiAuth:    NodeCategoryApp,
	NodeTypeCode:      NodeCategoryData,
	NodeTypeSet:       NodeCategoryData,
	NodeTypeDate:      NodeCategoryData,
	NodeTypeIf:        NodeCategoryLogic,
	NodeTypeSwitch:    NodeCategoryLogic,
	NodeTypeWait:      NodeCategoryLogic,
	NodeTypeCSV:       NodeCategoryFile,
	NodeTypeJSON:      NodeCategoryFile,
	NodeTypeNoop:      NodeCategoryUtility,
	NodeTypeRename:    NodeCategoryUtility,
	NodeTypePiPayment: NodeCategoryUtility,
	NodeTypePiData:    NodeCategoryUtility,
}

// Category resolves the node category from the type tag. Unknown types map to
// the empty category, which is never the trigger category.
func (t NodeType) Category() NodeCategory {
	return categoriesByNodeType[t]
}

// NodeDefinition is one entry of the node catalog served to the editor.
type NodeDefinition struct {
	Type        NodeType     `json:"type" bson:"type"`
	Name        string       `json:"name" bson:"name"`
	Description string       `json:"description" bson:"description"`
	Category    NodeCategory `json:"category" bson:"category"`

	// ConfigSchema is a JSON Schema document validating the node's config map.
	ConfigSchema json.RawMessage `json:"config_schema,omitempty" bson:"config_schema,omitempty"`
}

// NodeConfig is the free-form configuration mapping of a node. Keys vary per
// node type; accessors fall back to the given default when a key is absent or
// of the wrong shape.
type NodeConfig map[string]any

func (c NodeConfig) GetString(key, fallback string) string {
	value, ok := c[key]
	if !ok {
		return fallback
	}

	s, ok := value.(string)
	if !ok {
		return fallback
	}

	return s
}

func (c NodeConfig) GetFloat(key string, fallback float64) float64 {
	value, ok := c[key]
	if !ok {
		return fallback
	}

	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return fallback
		}

		return f
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fallback
		}

		return f
	default:
		return fallback
	}
}

func (c NodeConfig) GetInt(key string, fallback int) int {
	return int(c.GetFloat(key, float64(fallback)))
}

// Package nodes assembles the node type registry: the catalog definitions of
// every supported node type, the executor for each type, and the config schema
// validation applied when workflows are saved.
package nodes

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pibuilder/pibuilder/pkg/domain"
	"github.com/pibuilder/pibuilder/pkg/nodes/apps"
	"github.com/pibuilder/pibuilder/pkg/nodes/data"
	"github.com/pibuilder/pibuilder/pkg/nodes/files"
	"github.com/pibuilder/pibuilder/pkg/nodes/logic"
	"github.com/pibuilder/pibuilder/pkg/nodes/triggers"
	"github.com/pibuilder/pibuilder/pkg/nodes/utility"
)

type Registry struct {
	selector      domain.NodeSelector
	definitions   []domain.NodeDefinition
	schemasByType map[domain.NodeType]*jsonschema.Schema
}

// NewRegistry builds the full registry at process start. The selector and the
// compiled schemas are read-only afterwards.
func NewRegistry() (*Registry, error) {
	selector := domain.NewNodeSelector()

	trigger := triggers.NewTriggerNode()
	selector.Register(domain.NodeTypeSchedule, trigger)
	selector.Register(domain.NodeTypeWebhook, trigger)
	selector.Register(domain.NodeTypeManual, trigger)

	selector.Register(domain.NodeTypeSlack, apps.NewSlackNode())
	selector.Register(domain.NodeTypeEmail, apps.NewEmailNode())
	selector.Register(domain.NodeTypeHTTP, apps.NewHTTPRequestNode())
	selector.Register(domain.NodeTypePiAuth, apps.NewPiAuthNode())

	selector.Register(domain.NodeTypeCode, data.NewCodeNode())
	selector.Register(domain.NodeTypeSet, data.NewSetNode())
	selector.Register(domain.NodeTypeDate, data.NewDateNode())

	selector.Register(domain.NodeTypeIf, logic.NewIfNode())
	selector.Register(domain.NodeTypeSwitch, logic.NewSwitchNode())
	selector.Register(domain.NodeTypeWait, logic.NewWaitNode())

	selector.Register(domain.NodeTypeCSV, files.NewCSVNode())
	selector.Register(domain.NodeTypeJSON, files.NewJSONNode())

	selector.Register(domain.NodeTypeNoop, utility.NewNoopNode())
	selector.Register(domain.NodeTypeRename, utility.NewRenameNode())
	selector.Register(domain.NodeTypePiPayment, utility.NewPiPaymentNode())
	selector.Register(domain.NodeTypePiData, utility.NewPiDataNode())

	definitions := []domain.NodeDefinition{}
	definitions = append(definitions, triggers.Definitions...)
	definitions = append(definitions, apps.Definitions...)
	definitions = append(definitions, data.Definitions...)
	definitions = append(definitions, logic.Definitions...)
	definitions = append(definitions, files.Definitions...)
	definitions = append(definitions, utility.Definitions...)

	schemasByType := make(map[domain.NodeType]*jsonschema.Schema, len(definitions))

	for _, definition := range definitions {
		if len(definition.ConfigSchema) == 0 {
			continue
		}

		url := fmt.Sprintf("pibuilder://nodes/%s/config", definition.Type)

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(url, bytes.NewReader(definition.ConfigSchema)); err != nil {
			return nil, fmt.Errorf("failed to add config schema for node type %s: %w", definition.Type, err)
		}

		schema, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("failed to compile config schema for node type %s: %w", definition.Type, err)
		}

		schemasByType[definition.Type] = schema
	}

	return &Registry{
		selector:      selector,
		definitions:   definitions,
		schemasByType: schemasByType,
	}, nil
}

func (r *Registry) Selector() domain.NodeSelector {
	return r.selector
}

func (r *Registry) Definitions() []domain.NodeDefinition {
	return r.definitions
}

func (r *Registry) DefinitionsByCategory(category domain.NodeCategory) []domain.NodeDefinition {
	filtered := []domain.NodeDefinition{}

	for _, definition := range r.definitions {
		if definition.Category == category {
			filtered = append(filtered, definition)
		}
	}

	return filtered
}

// ValidateNodeConfig checks a node's config map against the JSON Schema of its
// type. Unknown node types validate vacuously; they execute as skipped, which
// is not an error.
func (r *Registry) ValidateNodeConfig(node domain.Node) error {
	schema, ok := r.schemasByType[node.Type]
	if !ok {
		return nil
	}

	// Round-trip through JSON so the validator sees canonical JSON types
	// regardless of how the config map was built.
	raw, err := json.Marshal(node.Config)
	if err != nil {
		return fmt.Errorf("node %s: config is not JSON-serializable: %w", node.ID, err)
	}

	var config any
	if err := json.Unmarshal(raw, &config); err != nil {
		return fmt.Errorf("node %s: %w", node.ID, err)
	}

	if err := schema.Validate(config); err != nil {
		return fmt.Errorf("node %s has invalid config for type %s: %w", node.ID, node.Type, err)
	}

	return nil
}

// ValidateWorkflowNodes validates every node config of a workflow, returning
// the first violation.
func (r *Registry) ValidateWorkflowNodes(workflow domain.Workflow) error {
	for _, node := range workflow.Nodes {
		if err := r.ValidateNodeConfig(node); err != nil {
			return err
		}
	}

	return nil
}

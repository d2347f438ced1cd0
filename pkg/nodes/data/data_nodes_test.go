package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

func TestSetNode_DoesNotMutateTriggerPayload(t *testing.T) {
	node := NewSetNode()

	payload := map[string]any{"existing": "value"}

	output, err := node.ExecuteNode(context.Background(), domain.NodeInput{
		Node: domain.Node{
			Config: domain.NodeConfig{"property_name": "added", "value": 42},
		},
		TriggerPayload: payload,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"existing": "value", "added": 42}, output.Data)
	assert.Equal(t, map[string]any{"existing": "value"}, payload)
}

func TestSetNode_Defaults(t *testing.T) {
	node := NewSetNode()

	output, err := node.ExecuteNode(context.Background(), domain.NodeInput{
		TriggerPayload: map[string]any{},
	})
	require.NoError(t, err)

	assert.Equal(t, "default_value", output.Data["new_field"])
}

func TestDateNode_FormatsInjectedClock(t *testing.T) {
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	node := &DateNode{now: func() time.Time { return fixed }}

	output, err := node.ExecuteNode(context.Background(), domain.NodeInput{
		TriggerPayload: map[string]any{"k": "v"},
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-30T12:00:00Z", output.Data["formatted_date"])
	assert.Equal(t, map[string]any{"k": "v"}, output.Data["original_data"])
}

func TestCodeNode_SimulatesExecution(t *testing.T) {
	node := NewCodeNode()

	output, err := node.ExecuteNode(context.Background(), domain.NodeInput{
		Node: domain.Node{Config: domain.NodeConfig{"language": "python"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Executed python code", output.Data["message"])
	assert.Equal(t, map[string]any{"simulated_execution": true}, output.Data["result"])
}

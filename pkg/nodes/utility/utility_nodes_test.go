package utility

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

func TestRenameNode_MovesField(t *testing.T) {
	node := NewRenameNode()

	payload := map[string]any{"old_name": "value", "other": 1}

	output, err := node.ExecuteNode(context.Background(), domain.NodeInput{
		Node: domain.Node{
			Config: domain.NodeConfig{"from_field": "old_name", "to_field": "new_name"},
		},
		TriggerPayload: payload,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"new_name": "value", "other": 1}, output.Data)
	assert.Equal(t, map[string]any{"old_name": "value", "other": 1}, payload)
}

func TestRenameNode_MissingSourcePassesThrough(t *testing.T) {
	node := NewRenameNode()

	payload := map[string]any{"other": 1}

	output, err := node.ExecuteNode(context.Background(), domain.NodeInput{
		Node: domain.Node{
			Config: domain.NodeConfig{"from_field": "absent", "to_field": "new_name"},
		},
		TriggerPayload: payload,
	})
	require.NoError(t, err)

	assert.Equal(t, payload, output.Data)
}

func TestNoopNode_PassesPayloadThrough(t *testing.T) {
	node := NewNoopNode()

	payload := map[string]any{"k": "v"}

	output, err := node.ExecuteNode(context.Background(), domain.NodeInput{TriggerPayload: payload})
	require.NoError(t, err)

	assert.Equal(t, payload, output.Data)
	assert.Equal(t, domain.NodeResultStatusSuccess, output.Status)
}

func TestPiPaymentNode_SimulatesPayment(t *testing.T) {
	node := NewPiPaymentNode()

	output, err := node.ExecuteNode(context.Background(), domain.NodeInput{
		Node: domain.Node{
			Config: domain.NodeConfig{"amount": 2.5, "memo": "Test payment"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Pi payment of 2.5 π with memo: Test payment", output.Data["message"])
	assert.Equal(t, true, output.Data["payment_created"])
}

func TestPiDataNode_Defaults(t *testing.T) {
	node := NewPiDataNode()

	output, err := node.ExecuteNode(context.Background(), domain.NodeInput{})
	require.NoError(t, err)

	assert.Equal(t, "Pi blockchain read operation for key: data_key", output.Data["message"])
}

package logic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

func TestIfNode_ConditionCheck(t *testing.T) {
	node := NewIfNode()

	tests := []struct {
		name      string
		condition string
		expected  bool
	}{
		{name: "contains true", condition: "this is TRUE", expected: true},
		{name: "contains yes", condition: "Yes please", expected: true},
		{name: "neither", condition: "no way", expected: false},
		{name: "default is true", condition: "", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := domain.NodeConfig{}
			if tt.condition != "" {
				config["condition"] = tt.condition
			}

			output, err := node.ExecuteNode(context.Background(), domain.NodeInput{
				Node: domain.Node{Config: config},
			})
			require.NoError(t, err)

			assert.Equal(t, tt.expected, output.Data["condition_met"])
		})
	}
}

func TestWaitNode_ComputesDurationWithoutSleeping(t *testing.T) {
	node := NewWaitNode()

	output, err := node.ExecuteNode(context.Background(), domain.NodeInput{
		Node: domain.Node{
			Config: domain.NodeConfig{"duration": 2, "unit": "minutes"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Waited for 2 minutes", output.Data["message"])
	assert.Equal(t, 120, output.Data["wait_seconds"])
}

func TestSwitchNode_SelectedCase(t *testing.T) {
	node := NewSwitchNode()

	output, err := node.ExecuteNode(context.Background(), domain.NodeInput{
		Node: domain.Node{Config: domain.NodeConfig{"value": "case_b"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "case_b", output.Data["selected_case"])
}

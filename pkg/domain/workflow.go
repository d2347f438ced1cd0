package domain

import (
	"errors"
	"time"
)

var (
	ErrWorkflowNotFound = errors.New("workflow not found")
	ErrNoTriggerNode    = errors.New("no trigger node found in workflow")
)

type WorkflowStatus string

const (
	WorkflowStatusDraft    WorkflowStatus = "draft"
	WorkflowStatusActive   WorkflowStatus = "active"
	WorkflowStatusArchived WorkflowStatus = "archived"
)

type Workflow struct {
	ID          string         `json:"id" bson:"id"`
	UserID      string         `json:"user_id" bson:"user_id"`
	Name        string         `json:"name" bson:"name"`
	Nodes       []Node         `json:"nodes" bson:"nodes"`
	Connections []Connection   `json:"connections" bson:"connections"`
	Status      WorkflowStatus `json:"status" bson:"status"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}

func (w Workflow) HasTriggerNode() bool {
	for _, node := range w.Nodes {
		if node.Type.Category() == NodeCategoryTrigger {
			return true
		}
	}

	return false
}

func (w Workflow) GetNodeByID(nodeID string) (Node, bool) {
	for _, node := range w.Nodes {
		if node.ID == nodeID {
			return node, true
		}
	}

	return Node{}, false
}

// MatchesWebhookPath reports whether any webhook node of the workflow is
// configured with the given ingress path.
func (w Workflow) MatchesWebhookPath(path string) bool {
	for _, node := range w.Nodes {
		if node.Type != NodeTypeWebhook {
			continue
		}

		if node.Config.GetString("path", "") == path {
			return true
		}
	}

	return false
}

type Node struct {
	ID     string     `json:"id" bson:"id"`
	Type   NodeType   `json:"type" bson:"type"`
	Config NodeConfig `json:"config" bson:"config"`
}

// Connection is a declared edge between two nodes. Connections are stored and
// returned to the editor, but the executor runs all nodes in stored order and
// does not traverse them.
type Connection struct {
	FromNodeID string `json:"from_node_id" bson:"from_node_id"`
	ToNodeID   string `json:"to_node_id" bson:"to_node_id"`
	FromPort   string `json:"from_port,omitempty" bson:"from_port,omitempty"`
	ToPort     string `json:"to_port,omitempty" bson:"to_port,omitempty"`
}

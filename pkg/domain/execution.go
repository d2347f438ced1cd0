package domain

import (
	"errors"
	"time"
)

var ErrExecutionNotFound = errors.New("execution not found")

type ExecutionStatus string

const (
	ExecutionStatusRunning   ExecutionStatus = "running"
	ExecutionStatusCompleted ExecutionStatus = "completed"
	ExecutionStatusFailed    ExecutionStatus = "failed"
)

type NodeResultStatus string

const (
	NodeResultStatusTriggered NodeResultStatus = "triggered"
	NodeResultStatusSuccess   NodeResultStatus = "success"
	NodeResultStatusSkipped   NodeResultStatus = "skipped"
	NodeResultStatusFailed    NodeResultStatus = "failed"
)

// Execution is the durable record of one workflow run. It is created with
// status running, mutated only by the run that owns it, and immutable once the
// status leaves running.
type Execution struct {
	ID          string          `json:"id" bson:"id"`
	WorkflowID  string          `json:"workflow_id" bson:"workflow_id"`
	Status      ExecutionStatus `json:"status" bson:"status"`
	StartedAt   time.Time       `json:"started_at" bson:"started_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	NodeResults []NodeResult    `json:"node_results" bson:"node_results"`
	Error       string          `json:"error,omitempty" bson:"error,omitempty"`
}

type NodeResult struct {
	NodeID    string           `json:"node_id" bson:"node_id"`
	NodeType  NodeType         `json:"node_type" bson:"node_type"`
	Timestamp time.Time        `json:"timestamp" bson:"timestamp"`
	Status    NodeResultStatus `json:"status" bson:"status"`
	Data      map[string]any   `json:"data,omitempty" bson:"data,omitempty"`
	Error     string           `json:"error,omitempty" bson:"error,omitempty"`
}

// NodeOutput is what a node handler produces. The workflow executor wraps it
// into a NodeResult together with the node id, type and timestamp.
type NodeOutput struct {
	Status NodeResultStatus
	Data   map[string]any
}

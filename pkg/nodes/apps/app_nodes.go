package apps

import (
	"context"
	"fmt"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

// App integration nodes simulate their outbound calls: they build the message
// a real integration would send and report success without touching the
// network. Real outbound calls are out of scope for the engine.

const (
	defaultSlackChannel = "#general"
	defaultSlackMessage = "Default message from Pi No-Code Builder"

	defaultEmailRecipient = "recipient@example.com"
	defaultEmailSubject   = "Message from Pi No-Code Builder"

	defaultHTTPMethod = "GET"
	defaultHTTPURL    = "https://api.example.com/data"

	defaultPiAuthScopes = "username"
)

type SlackNode struct{}

func NewSlackNode() *SlackNode {
	return &SlackNode{}
}

func (n *SlackNode) ExecuteNode(ctx context.Context, input domain.NodeInput) (domain.NodeOutput, error) {
	channel := input.Node.Config.GetString("channel", defaultSlackChannel)
	message := input.Node.Config.GetString("message", defaultSlackMessage)

	return domain.NodeOutput{
		Status: domain.NodeResultStatusSuccess,
		Data: map[string]any{
			"message":       fmt.Sprintf("Sent to Slack channel %s: %s", channel, message),
			"original_data": input.TriggerPayload,
		},
	}, nil
}

type EmailNode struct{}

func NewEmailNode() *EmailNode {
	return &EmailNode{}
}

func (n *EmailNode) ExecuteNode(ctx context.Context, input domain.NodeInput) (domain.NodeOutput, error) {
	to := input.Node.Config.GetString("to", defaultEmailRecipient)
	subject := input.Node.Config.GetString("subject", defaultEmailSubject)

	return domain.NodeOutput{
		Status: domain.NodeResultStatusSuccess,
		Data: map[string]any{
			"message":       fmt.Sprintf("Email sent to %s with subject: %s", to, subject),
			"original_data": input.TriggerPayload,
		},
	}, nil
}

type HTTPRequestNode struct{}

func NewHTTPRequestNode() *HTTPRequestNode {
	return &HTTPRequestNode{}
}

func (n *HTTPRequestNode) ExecuteNode(ctx context.Context, input domain.NodeInput) (domain.NodeOutput, error) {
	url := input.Node.Config.GetString("url", defaultHTTPURL)
	method := input.Node.Config.GetString("method", defaultHTTPMethod)

	return domain.NodeOutput{
		Status: domain.NodeResultStatusSuccess,
		Data: map[string]any{
			"message":       fmt.Sprintf("HTTP %s request to %s", method, url),
			"response":      map[string]any{"simulated": true, "status": "success"},
			"original_data": input.TriggerPayload,
		},
	}, nil
}

type PiAuthNode struct{}

func NewPiAuthNode() *PiAuthNode {
	return &PiAuthNode{}
}

func (n *PiAuthNode) ExecuteNode(ctx context.Context, input domain.NodeInput) (domain.NodeOutput, error) {
	scopes := input.Node.Config.GetString("scopes", defaultPiAuthScopes)

	return domain.NodeOutput{
		Status: domain.NodeResultStatusSuccess,
		Data: map[string]any{
			"message":       fmt.Sprintf("Pi authentication with scopes: %s", scopes),
			"authenticated": true,
			"original_data": input.TriggerPayload,
		},
	}, nil
}

package services

import "context"

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatMessage is one role-tagged message sent to the completion API.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CompletionRequest struct {
	Messages    []ChatMessage
	Temperature float32
	MaxTokens   int32
}

// CompletionClient calls an external text-generation service and returns
// the generated blob. Implementations carry a bounded timeout and do not
// retry; a single failure surfaces to the caller.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Model() string
}

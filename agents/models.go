// Copyright (c) Microsoft. All rights reserved.

package agents

// MessageRole identifies the author of a [ThreadMessage].
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
	MessageRoleSystem    MessageRole = "system"
)

// RunStatus is the lifecycle state of a [Run].
type RunStatus string

const (
	RunStatusQueued         RunStatus = "queued"
	RunStatusInProgress     RunStatus = "in_progress"
	RunStatusRequiresAction RunStatus = "requires_action"
	RunStatusCancelling     RunStatus = "cancelling"
	RunStatusCancelled      RunStatus = "cancelled"
	RunStatusFailed         RunStatus = "failed"
	RunStatusCompleted      RunStatus = "completed"
	RunStatusExpired        RunStatus = "expired"
)

// IsTerminal reports whether the run has stopped transitioning.
// Polling continues while the status is queued, in_progress, or cancelling.
func (s RunStatus) IsTerminal() bool {
	switch s {
	case RunStatusQueued, RunStatusInProgress, RunStatusCancelling:
		return false
	}
	return true
}

// ToolDefinition declares a tool available to an agent.
// Only the discriminator is modeled; tool-specific payloads (function
// schemas, file search options) ride along in the service's own shape.
type ToolDefinition struct {
	Type string `json:"type"`
}

// CodeInterpreterTool returns the declaration for the hosted code
// interpreter tool.
func CodeInterpreterTool() ToolDefinition {
	return ToolDefinition{Type: "code_interpreter"}
}

// Agent is a server-side configured assistant definition.
// Immutable from the client's perspective once returned.
type Agent struct {
	ID           string           `json:"id"`
	Object       string           `json:"object"`
	CreatedAt    int64            `json:"created_at"`
	Name         string           `json:"name"`
	Model        string           `json:"model"`
	Instructions string           `json:"instructions"`
	Tools        []ToolDefinition `json:"tools"`
}

// AgentDefinition is the request body for [Client.CreateAgent].
type AgentDefinition struct {
	Model        string           `json:"model"`
	Name         string           `json:"name,omitempty"`
	Instructions string           `json:"instructions,omitempty"`
	Tools        []ToolDefinition `json:"tools,omitempty"`
}

// Thread is a server-side ordered conversation container.
type Thread struct {
	ID        string            `json:"id"`
	Object    string            `json:"object"`
	CreatedAt int64             `json:"created_at"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// ThreadMessage is one message appended to a thread. Messages are never
// mutated; the service only appends.
type ThreadMessage struct {
	ID        string      `json:"id"`
	Object    string      `json:"object"`
	CreatedAt int64       `json:"created_at"`
	ThreadID  string      `json:"thread_id"`
	Role      MessageRole `json:"role"`
	Content   Contents    `json:"content"`
	AgentID   string      `json:"assistant_id,omitempty"`
	RunID     string      `json:"run_id,omitempty"`
}

// Text returns the concatenated text of all [TextContent] items in this message.
func (m *ThreadMessage) Text() string {
	return m.Content.Text()
}

// MessageList is the envelope returned by [Client.ListMessages].
// Entries are ordered newest-first.
type MessageList struct {
	Object  string          `json:"object"`
	Data    []ThreadMessage `json:"data"`
	FirstID string          `json:"first_id"`
	LastID  string          `json:"last_id"`
	HasMore bool            `json:"has_more"`
}

// AgentList is the envelope returned by [Client.ListAgents].
type AgentList struct {
	Object  string  `json:"object"`
	Data    []Agent `json:"data"`
	FirstID string  `json:"first_id"`
	LastID  string  `json:"last_id"`
	HasMore bool    `json:"has_more"`
}

// RunError is the failure detail the service attaches to a failed run.
type RunError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Run is a server-side execution of an agent against a thread.
// The client observes its status; it never mutates a run directly.
type Run struct {
	ID                     string    `json:"id"`
	Object                 string    `json:"object"`
	CreatedAt              int64     `json:"created_at"`
	ThreadID               string    `json:"thread_id"`
	AgentID                string    `json:"assistant_id"`
	Status                 RunStatus `json:"status"`
	Instructions           string    `json:"instructions,omitempty"`
	AdditionalInstructions string    `json:"additional_instructions,omitempty"`
	LastError              *RunError `json:"last_error,omitempty"`
}

// RunRequest is the request body for [Client.CreateRun] and
// [Client.CreateRunStream].
type RunRequest struct {
	AgentID                string `json:"assistant_id"`
	AdditionalInstructions string `json:"additional_instructions,omitempty"`
}

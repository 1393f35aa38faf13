// Copyright (c) Microsoft. All rights reserved.

package inference

// ChatRole identifies the author of a [ChatMessage].
type ChatRole string

const (
	ChatRoleSystem    ChatRole = "system"
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of a chat-completion request.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// SystemMessage creates a system-role [ChatMessage].
func SystemMessage(text string) ChatMessage {
	return ChatMessage{Role: ChatRoleSystem, Content: text}
}

// UserMessage creates a user-role [ChatMessage].
func UserMessage(text string) ChatMessage {
	return ChatMessage{Role: ChatRoleUser, Content: text}
}

// ChatRequest is the body of a chat-completion call.
type ChatRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []ChatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
	Stream      bool          `json:"stream,omitempty"`
}

// ChatChoice is one completion alternative in a [ChatCompletions].
type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

// ChatUsage reports token consumption for a completion.
type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatCompletions is the complete (non-streaming) response.
type ChatCompletions struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
	Usage   ChatUsage    `json:"usage"`
}

// Text returns the content of the first choice, or "" when there is none.
func (c *ChatCompletions) Text() string {
	if len(c.Choices) == 0 {
		return ""
	}
	return c.Choices[0].Message.Content
}

// ChatUpdate is one incremental chunk of a streaming completion.
type ChatUpdate struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index int `json:"index"`
		Delta struct {
			Role    ChatRole `json:"role"`
			Content string   `json:"content"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// Text returns the content delta of the first choice, or "" when there is none.
func (u *ChatUpdate) Text() string {
	if len(u.Choices) == 0 {
		return ""
	}
	return u.Choices[0].Delta.Content
}

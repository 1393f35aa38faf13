// Copyright (c) Microsoft. All rights reserved.

package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Azure-Samples/azure-ai-agents-go/azai"
)

// StreamEventType identifies the kind of a [StreamEvent].
type StreamEventType string

const (
	StreamEventRunCreated   StreamEventType = "thread.run.created"
	StreamEventRunStatus    StreamEventType = "thread.run.status"
	StreamEventMessage      StreamEventType = "thread.message"
	StreamEventMessageDelta StreamEventType = "thread.message.delta"
)

// StreamEvent is a sealed interface over the updates a streaming run emits.
// Concrete types: [RunCreatedEvent], [RunStatusEvent], [MessageEvent],
// [MessageDeltaEvent]. Use a type switch to dispatch.
type StreamEvent interface {
	// EventType returns the discriminator for this update.
	EventType() StreamEventType

	// sealedEvent prevents external implementations.
	sealedEvent()
}

type eventBase struct{}

func (eventBase) sealedEvent() {}

// RunCreatedEvent marks the start of a streaming run. The service emits it
// exactly once, before any other run-specific event.
type RunCreatedEvent struct {
	eventBase
	Run Run
}

func (e *RunCreatedEvent) EventType() StreamEventType { return StreamEventRunCreated }

// RunStatusEvent reports a run lifecycle transition after creation
// (queued, in_progress, completed, failed, ...).
type RunStatusEvent struct {
	eventBase
	Run Run
}

func (e *RunStatusEvent) EventType() StreamEventType { return StreamEventRunStatus }

// MessageEvent carries a full message snapshot (created or completed).
type MessageEvent struct {
	eventBase
	Message ThreadMessage
}

func (e *MessageEvent) EventType() StreamEventType { return StreamEventMessage }

// MessageDeltaEvent carries an incremental slice of a message under
// construction: text fragments and image-file references, in order.
type MessageDeltaEvent struct {
	eventBase
	MessageID string
	Content   Contents
}

func (e *MessageDeltaEvent) EventType() StreamEventType { return StreamEventMessageDelta }

// Text returns the concatenated text of all [TextContent] items in this delta.
func (e *MessageDeltaEvent) Text() string {
	return e.Content.Text()
}

// messageDelta is the wire shape of a thread.message.delta payload.
type messageDelta struct {
	ID    string `json:"id"`
	Delta struct {
		Content Contents `json:"content"`
	} `json:"delta"`
}

// readRunEvents parses the service's event stream from r and sends typed
// events to ch in arrival order. Event names this client does not model are
// skipped for forward compatibility; malformed payloads abort the stream.
func readRunEvents(ctx context.Context, r io.Reader, ch chan<- StreamEvent) error {
	return azai.ReadServerEvents(r, func(raw azai.ServerEvent) error {
		ev, err := parseRunEvent(raw)
		if err != nil {
			return err
		}
		if ev == nil {
			return nil
		}
		select {
		case ch <- ev:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}

// parseRunEvent maps one wire event to its typed form, or nil to skip it.
func parseRunEvent(raw azai.ServerEvent) (StreamEvent, error) {
	switch {
	case raw.Name == "thread.run.created":
		var run Run
		if err := json.Unmarshal([]byte(raw.Data), &run); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", azai.ErrInvalidResponse, raw.Name, err)
		}
		return &RunCreatedEvent{Run: run}, nil

	case strings.HasPrefix(raw.Name, "thread.run."):
		var run Run
		if err := json.Unmarshal([]byte(raw.Data), &run); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", azai.ErrInvalidResponse, raw.Name, err)
		}
		return &RunStatusEvent{Run: run}, nil

	case raw.Name == "thread.message.delta":
		var delta messageDelta
		if err := json.Unmarshal([]byte(raw.Data), &delta); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", azai.ErrInvalidResponse, raw.Name, err)
		}
		return &MessageDeltaEvent{MessageID: delta.ID, Content: delta.Delta.Content}, nil

	case raw.Name == "thread.message.created" || raw.Name == "thread.message.completed":
		var msg ThreadMessage
		if err := json.Unmarshal([]byte(raw.Data), &msg); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", azai.ErrInvalidResponse, raw.Name, err)
		}
		return &MessageEvent{Message: msg}, nil

	default:
		// thread.message.in_progress, done markers without [DONE] data,
		// and event kinds added by newer service versions.
		return nil, nil
	}
}

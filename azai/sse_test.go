// Copyright (c) Microsoft. All rights reserved.

package azai_test

import (
	"strings"
	"testing"

	"github.com/Azure-Samples/azure-ai-agents-go/azai"
)

func collectEvents(t *testing.T, body string) []azai.ServerEvent {
	t.Helper()
	var events []azai.ServerEvent
	err := azai.ReadServerEvents(strings.NewReader(body), func(ev azai.ServerEvent) error {
		events = append(events, ev)
		return nil
	})
	if err != nil {
		t.Fatalf("read events: %v", err)
	}
	return events
}

func TestReadServerEvents_NamedEvents(t *testing.T) {
	body := "event: thread.run.created\n" +
		"data: {\"id\":\"run_1\"}\n" +
		"\n" +
		"event: thread.message.delta\n" +
		"data: {\"id\":\"msg_1\"}\n" +
		"\n"

	events := collectEvents(t, body)
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if events[0].Name != "thread.run.created" || events[0].Data != `{"id":"run_1"}` {
		t.Errorf("event[0] = %+v", events[0])
	}
	if events[1].Name != "thread.message.delta" {
		t.Errorf("event[1].Name = %q", events[1].Name)
	}
}

func TestReadServerEvents_DoneTerminates(t *testing.T) {
	body := "event: thread.run.completed\n" +
		"data: {\"id\":\"run_1\"}\n" +
		"\n" +
		"event: done\n" +
		"data: [DONE]\n" +
		"\n" +
		"event: after.the.end\n" +
		"data: {\"should\":\"not appear\"}\n" +
		"\n"

	events := collectEvents(t, body)
	if len(events) != 1 {
		t.Fatalf("len = %d, want 1 (stream should stop at [DONE])", len(events))
	}
	if events[0].Name != "thread.run.completed" {
		t.Errorf("event[0].Name = %q", events[0].Name)
	}
}

func TestReadServerEvents_MultilineData(t *testing.T) {
	body := "data: line one\n" +
		"data: line two\n" +
		"\n"

	events := collectEvents(t, body)
	if len(events) != 1 {
		t.Fatalf("len = %d, want 1", len(events))
	}
	if events[0].Data != "line one\nline two" {
		t.Errorf("data = %q", events[0].Data)
	}
}

func TestReadServerEvents_IgnoresCommentsAndFlushesTail(t *testing.T) {
	// No trailing blank line: the final event must still be delivered.
	body := ": keep-alive\n" +
		"event: thread.run.created\n" +
		"data: {}\n"

	events := collectEvents(t, body)
	if len(events) != 1 {
		t.Fatalf("len = %d, want 1", len(events))
	}
	if events[0].Name != "thread.run.created" {
		t.Errorf("name = %q", events[0].Name)
	}
}

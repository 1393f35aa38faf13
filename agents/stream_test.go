// Copyright (c) Microsoft. All rights reserved.

package agents_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure-Samples/azure-ai-agents-go/agents"
)

func sseResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: 200,
		Header:     http.Header{"Content-Type": []string{"text/event-stream"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

const runStreamBody = "event: thread.run.created\n" +
	"data: {\"id\":\"run_1\",\"thread_id\":\"thread_1\",\"assistant_id\":\"agent_1\",\"status\":\"queued\"}\n" +
	"\n" +
	"event: thread.run.in_progress\n" +
	"data: {\"id\":\"run_1\",\"status\":\"in_progress\"}\n" +
	"\n" +
	"event: thread.message.created\n" +
	"data: {\"id\":\"msg_1\",\"thread_id\":\"thread_1\",\"role\":\"assistant\",\"content\":[]}\n" +
	"\n" +
	"event: some.future.event\n" +
	"data: {\"ignored\":true}\n" +
	"\n" +
	"event: thread.message.delta\n" +
	"data: {\"id\":\"msg_1\",\"delta\":{\"content\":[{\"index\":0,\"type\":\"text\",\"text\":{\"value\":\"Why did\"}}]}}\n" +
	"\n" +
	"event: thread.message.delta\n" +
	"data: {\"id\":\"msg_1\",\"delta\":{\"content\":[{\"index\":0,\"type\":\"text\",\"text\":{\"value\":\" the gopher\"}},{\"index\":1,\"type\":\"image_file\",\"image_file\":{\"file_id\":\"img_1\"}}]}}\n" +
	"\n" +
	"event: thread.run.completed\n" +
	"data: {\"id\":\"run_1\",\"status\":\"completed\"}\n" +
	"\n" +
	"event: done\n" +
	"data: [DONE]\n" +
	"\n"

func newStreamClient(t *testing.T) *agents.Client {
	t.Helper()
	httpClient := newMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodPost || !strings.HasSuffix(req.URL.Path, "/threads/thread_1/runs") {
			t.Errorf("unexpected request: %s %s", req.Method, req.URL.Path)
		}
		body, _ := io.ReadAll(req.Body)
		var got map[string]any
		json.Unmarshal(body, &got)
		if got["stream"] != true {
			t.Errorf("stream flag = %v", got["stream"])
		}
		return sseResponse(runStreamBody), nil
	})
	return newTestClient(httpClient)
}

func TestCreateRunStream_EventOrder(t *testing.T) {
	client := newStreamClient(t)
	ctx := context.Background()

	stream, err := client.CreateRunStream(ctx, "thread_1", agents.RunRequest{AgentID: "agent_1"})
	if err != nil {
		t.Fatalf("CreateRunStream: %v", err)
	}
	defer stream.Close()

	events, err := stream.Collect(ctx)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	// The unknown event is skipped; everything else arrives in order.
	if len(events) != 6 {
		t.Fatalf("len = %d, want 6", len(events))
	}

	created, ok := events[0].(*agents.RunCreatedEvent)
	if !ok {
		t.Fatalf("events[0] = %T, want *RunCreatedEvent", events[0])
	}
	if created.Run.ID != "run_1" || created.Run.Status != agents.RunStatusQueued {
		t.Errorf("created run = %+v", created.Run)
	}

	// Exactly one run-created marker, and it is first.
	for i, ev := range events[1:] {
		if _, isCreated := ev.(*agents.RunCreatedEvent); isCreated {
			t.Errorf("events[%d] is a second RunCreatedEvent", i+1)
		}
	}

	var text strings.Builder
	var imageIDs []string
	for _, ev := range events {
		delta, ok := ev.(*agents.MessageDeltaEvent)
		if !ok {
			continue
		}
		if delta.MessageID != "msg_1" {
			t.Errorf("delta message id = %q", delta.MessageID)
		}
		for _, c := range delta.Content {
			switch v := c.(type) {
			case *agents.TextContent:
				text.WriteString(v.Text)
			case *agents.ImageFileContent:
				imageIDs = append(imageIDs, v.FileID)
			}
		}
	}
	if text.String() != "Why did the gopher" {
		t.Errorf("streamed text = %q", text.String())
	}
	if len(imageIDs) != 1 || imageIDs[0] != "img_1" {
		t.Errorf("image ids = %v", imageIDs)
	}

	last, ok := events[len(events)-1].(*agents.RunStatusEvent)
	if !ok || last.Run.Status != agents.RunStatusCompleted {
		t.Errorf("last event = %#v", events[len(events)-1])
	}
}

func TestCreateRunStream_MessageSnapshot(t *testing.T) {
	client := newStreamClient(t)
	ctx := context.Background()

	stream, err := client.CreateRunStream(ctx, "thread_1", agents.RunRequest{AgentID: "agent_1"})
	if err != nil {
		t.Fatalf("CreateRunStream: %v", err)
	}
	defer stream.Close()

	events, err := stream.Collect(ctx)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	var snapshots int
	for _, ev := range events {
		if msg, ok := ev.(*agents.MessageEvent); ok {
			snapshots++
			if msg.Message.ID != "msg_1" || msg.Message.Role != agents.MessageRoleAssistant {
				t.Errorf("snapshot = %+v", msg.Message)
			}
		}
	}
	if snapshots != 1 {
		t.Errorf("snapshots = %d, want 1", snapshots)
	}
}

func TestCreateRunStream_CloseStopsConsumption(t *testing.T) {
	client := newStreamClient(t)

	stream, err := client.CreateRunStream(context.Background(), "thread_1", agents.RunRequest{AgentID: "agent_1"})
	if err != nil {
		t.Fatalf("CreateRunStream: %v", err)
	}

	if _, ok, err := stream.Next(context.Background()); !ok || err != nil {
		t.Fatalf("next: ok=%v err=%v", ok, err)
	}
	if err := stream.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

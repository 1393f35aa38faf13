// Copyright (c) Microsoft. All rights reserved.

// Command agentstream walks the streaming agent flow: create an agent, start
// a thread, post a question, then run the agent in streaming mode and render
// each update as it arrives.
//
// Usage:
//
//	export PROJECT_CONNECTION_STRING="<host>;<subscription>;<resource-group>;<project>"
//	export MODEL_DEPLOYMENT_NAME=gpt-4o   # optional
//	go run .
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/joho/godotenv"

	"github.com/Azure-Samples/azure-ai-agents-go/agents"
	"github.com/Azure-Samples/azure-ai-agents-go/projects"
)

func main() {
	_ = godotenv.Load()

	if os.Getenv("DEBUG") != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	cs, err := projects.ParseConnectionString(os.Getenv("PROJECT_CONNECTION_STRING"))
	if err != nil {
		return err
	}

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return fmt.Errorf("create credential: %w", err)
	}

	model := os.Getenv("MODEL_DEPLOYMENT_NAME")
	if model == "" {
		model = "gpt-4o"
	}

	client := agents.NewClient(cs.AgentsEndpoint(), cred)

	agent, err := client.CreateAgent(ctx, agents.AgentDefinition{
		Model:        model,
		Name:         "my-assistant",
		Instructions: "You are a helpful assistant.",
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := client.DeleteAgent(ctx, agent.ID); err != nil {
			slog.WarnContext(ctx, "failed to delete agent", "agent_id", agent.ID, "error", err)
		}
	}()

	thread, err := client.CreateThread(ctx)
	if err != nil {
		return err
	}

	if _, err := client.CreateMessage(ctx, thread.ID, agents.MessageRoleUser,
		"Hello, tell me a joke"); err != nil {
		return err
	}

	stream, err := client.CreateRunStream(ctx, thread.ID, agents.RunRequest{AgentID: agent.ID})
	if err != nil {
		return err
	}
	defer stream.Close()

	for {
		event, ok, err := stream.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		switch ev := event.(type) {
		case *agents.RunCreatedEvent:
			fmt.Printf("--- Run started! Run ID: %s ---\n", ev.Run.ID)
		case *agents.MessageDeltaEvent:
			// Append incrementally; deltas arrive mid-line.
			for _, c := range ev.Content {
				switch v := c.(type) {
				case *agents.TextContent:
					fmt.Print(v.Text)
				case *agents.ImageFileContent:
					fmt.Printf("<image from ID: %s>", v.FileID)
				}
			}
		case *agents.RunStatusEvent, *agents.MessageEvent:
			// Lifecycle bookkeeping; nothing to render.
		}
	}
	fmt.Println()
	fmt.Println("--- Run finished ---")
	return nil
}

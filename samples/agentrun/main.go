// Copyright (c) Microsoft. All rights reserved.

// Command agentrun walks the polled agent flow: create an agent, start a
// thread, post a question, run the agent, poll the run to completion, then
// list and render the thread's messages.
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
	// Load .env file if present (ignored if missing).
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
		Name:         "math-tutor",
		Instructions: "You are a personal math tutor. Write and run code to answer math questions.",
		Tools:        []agents.ToolDefinition{agents.CodeInterpreterTool()},
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created agent, agent ID: %s\n", agent.ID)
	defer func() {
		if err := client.DeleteAgent(ctx, agent.ID); err != nil {
			slog.WarnContext(ctx, "failed to delete agent", "agent_id", agent.ID, "error", err)
		}
	}()

	thread, err := client.CreateThread(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Created thread, thread ID: %s\n", thread.ID)

	message, err := client.CreateMessage(ctx, thread.ID, agents.MessageRoleUser,
		"I need to solve the equation `3x + 11 = 14`. Can you help me?")
	if err != nil {
		return err
	}
	fmt.Printf("Created message, message ID: %s\n", message.ID)

	// The newest listed entry must be the message just created.
	list, err := client.ListMessages(ctx, thread.ID)
	if err != nil {
		return err
	}
	if len(list.Data) == 0 || list.Data[0].ID != message.ID {
		return fmt.Errorf("newest listed message does not match created message %s", message.ID)
	}

	run, err := client.CreateRun(ctx, thread.ID, agents.RunRequest{
		AgentID:                agent.ID,
		AdditionalInstructions: "Please address the user as Jane Doe. The user has a premium account.",
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created run, run ID: %s\n", run.ID)

	run, err = client.PollRun(ctx, thread.ID, run.ID, nil)
	if err != nil {
		return err
	}
	fmt.Printf("Run finished with status: %s\n", run.Status)
	if run.Status == agents.RunStatusFailed && run.LastError != nil {
		return fmt.Errorf("run failed: %s: %s", run.LastError.Code, run.LastError.Message)
	}

	list, err = client.ListMessages(ctx, thread.ID)
	if err != nil {
		return err
	}
	return agents.WriteMessages(os.Stdout, list)
}

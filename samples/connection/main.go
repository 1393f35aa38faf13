// Copyright (c) Microsoft. All rights reserved.

// Command connection resolves the project's default serverless connection,
// validates its API-key binding, and sends one chat completion directly to
// the resolved endpoint.
//
// Usage:
//
//	export PROJECT_CONNECTION_STRING="<host>;<subscription>;<resource-group>;<project>"
//	export MODEL_DEPLOYMENT_NAME=<deployment>
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

	"github.com/Azure-Samples/azure-ai-agents-go/inference"
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

	client := projects.NewClient(cs.WorkspaceEndpoint(), cred)

	conn, err := client.GetDefaultConnection(ctx, projects.CategoryServerless, true)
	if err != nil {
		return err
	}
	fmt.Printf("Resolved connection %q (auth type %s)\n", conn.Name, conn.AuthType)

	endpoint, key, err := conn.APIKeyAuth()
	if err != nil {
		return err
	}

	chat := inference.NewClient(endpoint, key)
	resp, err := chat.Complete(ctx, inference.ChatRequest{
		Model: os.Getenv("MODEL_DEPLOYMENT_NAME"),
		Messages: []inference.ChatMessage{
			inference.SystemMessage("You are a helpful assistant."),
			inference.UserMessage("How many feet are in a mile?"),
		},
	})
	if err != nil {
		return err
	}

	fmt.Println(resp.Text())
	return nil
}

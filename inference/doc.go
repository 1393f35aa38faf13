// Copyright (c) Microsoft. All rights reserved.

// Package inference is a chat-completions client for a model deployment
// reached directly through a resolved connection's endpoint and API key.
//
//	endpoint, key, err := conn.APIKeyAuth()
//	if err != nil {
//	    return err
//	}
//	client := inference.NewClient(endpoint, key)
//
//	resp, err := client.Complete(ctx, inference.ChatRequest{
//	    Model: deployment,
//	    Messages: []inference.ChatMessage{
//	        inference.SystemMessage("You are a helpful assistant."),
//	        inference.UserMessage("How many feet are in a mile?"),
//	    },
//	})
package inference

// Copyright (c) Microsoft. All rights reserved.

// Package agents is a client for the hosted agents service: it creates
// agents and conversation threads, posts messages, and drives runs either by
// polling or by consuming the service's event stream.
//
// All entities (agents, threads, messages, runs) live server-side; this
// package treats them as read-only value objects and never fabricates their
// identifiers.
//
//	client := agents.NewClient(endpoint, cred)
//
//	agent, _ := client.CreateAgent(ctx, agents.AgentDefinition{
//	    Model:        "gpt-4o",
//	    Name:         "math-tutor",
//	    Instructions: "You are a personal math tutor.",
//	})
//	thread, _ := client.CreateThread(ctx)
//	client.CreateMessage(ctx, thread.ID, agents.MessageRoleUser, "2+2=?")
//
//	run, _ := client.CreateRun(ctx, thread.ID, agents.RunRequest{AgentID: agent.ID})
//	run, _ = client.PollRun(ctx, thread.ID, run.ID, nil)
//
// For incremental output use [Client.CreateRunStream] and pull
// [StreamEvent] values until the stream ends.
package agents

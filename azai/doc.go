// Copyright (c) Microsoft. All rights reserved.

// Package azai provides the plumbing shared by the service clients in this
// repository: a JSON/REST transport with API-key or Entra ID token
// authentication, the error taxonomy used across packages, and a generic
// cancellable [EventStream] for consuming server-pushed event sequences.
//
// Service packages ([github.com/Azure-Samples/azure-ai-agents-go/agents],
// projects, inference) build on this package; application code normally only
// touches its error values:
//
//	run, err := client.PollRun(ctx, thread.ID, run.ID, nil)
//	if errors.Is(err, azai.ErrAuth) {
//	    // credential problem, not a run problem
//	}
package azai

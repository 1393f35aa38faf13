// Copyright (c) Microsoft. All rights reserved.

// Package projects resolves project-level resources: it parses the
// PROJECT_CONNECTION_STRING format into service endpoints and exposes the
// connections API used to obtain credential/endpoint bindings for direct
// model access.
package projects

// Copyright (c) Microsoft. All rights reserved.

package projects

import (
	"fmt"
	"strings"

	"github.com/Azure-Samples/azure-ai-agents-go/azai"
)

// ConnectionString is the parsed form of a project connection string:
//
//	<host>;<subscription id>;<resource group>;<project name>
type ConnectionString struct {
	Host           string
	SubscriptionID string
	ResourceGroup  string
	ProjectName    string
}

// ParseConnectionString splits and validates a project connection string.
// Malformed input is a configuration error, not a service error.
func ParseConnectionString(s string) (*ConnectionString, error) {
	parts := strings.Split(s, ";")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: connection string must have 4 semicolon-separated parts, got %d",
			azai.ErrConfiguration, len(parts))
	}
	cs := &ConnectionString{
		Host:           strings.TrimSpace(parts[0]),
		SubscriptionID: strings.TrimSpace(parts[1]),
		ResourceGroup:  strings.TrimSpace(parts[2]),
		ProjectName:    strings.TrimSpace(parts[3]),
	}
	for name, v := range map[string]string{
		"host":            cs.Host,
		"subscription id": cs.SubscriptionID,
		"resource group":  cs.ResourceGroup,
		"project name":    cs.ProjectName,
	} {
		if v == "" {
			return nil, fmt.Errorf("%w: connection string is missing the %s", azai.ErrConfiguration, name)
		}
	}
	return cs, nil
}

// workspacePath is the resource path shared by the project's service surfaces.
func (cs *ConnectionString) workspacePath() string {
	return fmt.Sprintf("subscriptions/%s/resourceGroups/%s/providers/Microsoft.MachineLearningServices/workspaces/%s",
		cs.SubscriptionID, cs.ResourceGroup, cs.ProjectName)
}

// AgentsEndpoint returns the base URL for the agents service of this project.
func (cs *ConnectionString) AgentsEndpoint() string {
	return fmt.Sprintf("https://%s/agents/v1.0/%s", cs.Host, cs.workspacePath())
}

// WorkspaceEndpoint returns the base URL for project-level operations such
// as the connections API.
func (cs *ConnectionString) WorkspaceEndpoint() string {
	return fmt.Sprintf("https://%s/%s", cs.Host, cs.workspacePath())
}

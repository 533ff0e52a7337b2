// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with every tool registered.
func NewServer(name, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil)
	mcp.AddTool(server, MetadataExtractPatientRecord, ExtractPatientRecord)
	mcp.AddTool(server, MetadataResolveNumeral, ResolveNumeral)
	return server
}

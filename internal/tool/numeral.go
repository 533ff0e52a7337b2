// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fisapacient/fisa-mcp/internal/extraction"
)

// MetadataResolveNumeral describes the resolve_numeral tool.
var MetadataResolveNumeral = &mcp.Tool{
	Name: "resolve_numeral",
	Description: "Resolve a dictated Romanian number (digits, a number-word such as \"opt\", " +
		"or a compound such as \"douăzeci și trei\") to its numeric value. " +
		"found is false when the token is not a supported number.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"token"},
		"properties": map[string]interface{}{
			"token": map[string]interface{}{
				"type":        "string",
				"description": "The dictated value to resolve",
			},
		},
	},
}

type InputResolveNumeral struct {
	Token string `json:"token"`
}

type OutputResolveNumeral struct {
	Value float64 `json:"value"`
	Found bool    `json:"found"`
}

func ResolveNumeral(_ context.Context, _ *mcp.CallToolRequest, input InputResolveNumeral) (*mcp.CallToolResult, OutputResolveNumeral, error) {
	if input.Token == "" {
		return nil, OutputResolveNumeral{}, fmt.Errorf("token is required")
	}
	value, found := extraction.Resolve(input.Token)
	return nil, OutputResolveNumeral{Value: value, Found: found}, nil
}

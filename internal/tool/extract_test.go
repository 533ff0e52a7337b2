// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fisapacient/fisa-mcp/internal/extraction"
	"github.com/fisapacient/fisa-mcp/internal/transcript/loaders"
)

func TestExtractPatientRecord(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	tests := []struct {
		name           string
		input          InputExtractPatientRecord
		wantErr        bool
		errContains    string
		validateOutput func(t *testing.T, output OutputExtractPatientRecord)
	}{
		{
			name:  "empty transcript yields the manual review note",
			input: InputExtractPatientRecord{Transcript: ""},
			validateOutput: func(t *testing.T, output OutputExtractPatientRecord) {
				assert.Equal(t, "text", output.LoaderUsed)
				assert.Empty(t, output.Document.Measurements)
				assert.Empty(t, output.Document.FHIRObservations)
				assert.Equal(t, []string{extraction.ManualReviewNote}, output.Document.Notes)
				assert.NotNil(t, output.Unresolved)
			},
		},
		{
			name: "dictation produces every entity class",
			input: InputExtractPatientRecord{
				Transcript: "Aorta la inel, opt. Valva mitrală, vede. Pacientul prezintă dispnee și palpitații. " +
					"Concor 5 mg. Diagnostic: insuficiență cardiacă.",
				SourceID: "dictare-1.txt",
				Validate: true,
			},
			validateOutput: func(t *testing.T, output OutputExtractPatientRecord) {
				require.Len(t, output.Document.Measurements, 1)
				assert.Equal(t, "aorta la inel", output.Document.Measurements[0].Structure)
				assert.Equal(t, 8.0, output.Document.Measurements[0].Value)
				assert.Equal(t, []string{"Dispnee", "Palpitații"}, output.Document.Symptoms)
				assert.Equal(t, []string{"Insuficiență cardiacă"}, output.Document.Diagnoses)
				require.Len(t, output.Document.Medications, 1)
				assert.Equal(t, "Concor", output.Document.Medications[0].Name)
				assert.Empty(t, output.Document.Notes)

				require.Len(t, output.Document.FHIRObservations, 1)
				assert.Equal(t, "obs-1", output.Document.FHIRObservations[0].ID)

				assert.Equal(t, []extraction.Candidate{{Structure: "valva mitrală", Value: "vede"}}, output.Unresolved)
				assert.Equal(t, 1, output.Counts.Measurements)
			},
		},
		{
			name: "asr envelope is unwrapped",
			input: InputExtractPatientRecord{
				Transcript: `{"text": "pacientul acuză tuse și febră", "language": "ro"}`,
				Format:     "asr",
			},
			validateOutput: func(t *testing.T, output OutputExtractPatientRecord) {
				assert.Equal(t, "asr", output.LoaderUsed)
				assert.Equal(t, []string{"Tuse", "Febră"}, output.Document.Symptoms)
			},
		},
		{
			name: "medication only still asks for review",
			input: InputExtractPatientRecord{
				Transcript: "concor 5 mg",
			},
			validateOutput: func(t *testing.T, output OutputExtractPatientRecord) {
				require.Len(t, output.Document.Medications, 1)
				assert.Equal(t, "5 mg", output.Document.Medications[0].Dosage)
				assert.Equal(t, []string{extraction.ManualReviewNote}, output.Document.Notes)
			},
		},
		{
			name: "unsupported format returns error",
			input: InputExtractPatientRecord{
				Transcript: "some audio bytes",
				Format:     "mp3",
			},
			wantErr:     true,
			errContains: "unsupported transcript format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := ExtractPatientRecord(ctx, req, tt.input)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			if tt.validateOutput != nil {
				tt.validateOutput(t, output)
			}
		})
	}
}

func TestResolveNumeral(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	_, out, err := ResolveNumeral(ctx, req, InputResolveNumeral{Token: "douăzeci și trei"})
	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.Equal(t, 23.0, out.Value)

	_, out, err = ResolveNumeral(ctx, req, InputResolveNumeral{Token: "vede"})
	require.NoError(t, err)
	assert.False(t, out.Found)

	_, _, err = ResolveNumeral(ctx, req, InputResolveNumeral{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token is required")
}

func TestNewServer(t *testing.T) {
	ctx := context.Background()
	server := NewServer("fisa-mcp", "test")

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "test"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer clientSession.Close()

	tools, err := clientSession.ListTools(ctx, nil)
	require.NoError(t, err)
	var names []string
	for _, tl := range tools.Tools {
		names = append(names, tl.Name)
	}
	assert.ElementsMatch(t, []string{"extract_patient_record", "resolve_numeral"}, names)

	res, err := clientSession.CallTool(ctx, &mcp.CallToolParams{
		Name:      "extract_patient_record",
		Arguments: map[string]any{"transcript": "aorta la inel, opt"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	// Every hint a loader accepts must pass the input schema.
	for _, format := range loaders.FormatHints() {
		transcriptText := "aorta la inel, opt"
		if format != "text" && format != "txt" && format != "plain" {
			transcriptText = `{"text": "aorta la inel, opt"}`
		}
		res, err := clientSession.CallTool(ctx, &mcp.CallToolParams{
			Name:      "extract_patient_record",
			Arguments: map[string]any{"transcript": transcriptText, "format": format},
		})
		require.NoError(t, err, format)
		assert.False(t, res.IsError, format)
	}

	res, err = clientSession.CallTool(ctx, &mcp.CallToolParams{
		Name:      "extract_patient_record",
		Arguments: map[string]any{"transcript": "x", "format": "mp3"},
	})
	assert.True(t, err != nil || res.IsError, "unknown format hint must be rejected")
}

func TestMetadataExtractPatientRecord_FormatEnum(t *testing.T) {
	schema, ok := MetadataExtractPatientRecord.InputSchema.(map[string]interface{})
	require.True(t, ok)
	props := schema["properties"].(map[string]interface{})
	format := props["format"].(map[string]interface{})
	assert.ElementsMatch(t, []string{"text", "txt", "plain", "asr", "json", "yaml", "yml"}, format["enum"])
}

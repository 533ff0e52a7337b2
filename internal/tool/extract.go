// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fisapacient/fisa-mcp/internal/extraction"
	"github.com/fisapacient/fisa-mcp/internal/report"
	"github.com/fisapacient/fisa-mcp/internal/transcript"
	"github.com/fisapacient/fisa-mcp/internal/transcript/loaders"
)

// MetadataExtractPatientRecord describes the extract_patient_record tool.
var MetadataExtractPatientRecord = &mcp.Tool{
	Name: "extract_patient_record",
	Description: "Extract a structured patient record from a Romanian medical dictation transcript. " +
		"Returns cardiac ultrasound measurements, medications, symptoms and diagnoses under the keys " +
		"masuratori_ecografice, medicamente, simptome, diagnostice and observatii, plus a " +
		"fhir_observations list with one FHIR Observation per measurement. " +
		"When no measurement, symptom or diagnosis is found, observatii contains a manual review note.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"transcript"},
		"properties": map[string]interface{}{
			"transcript": map[string]interface{}{
				"type":        "string",
				"description": "Transcript text, or a speech recognition result (JSON/YAML with text or segments)",
			},
			"format": map[string]interface{}{
				"type":        "string",
				"description": "Format hint: text (txt, plain) or asr (json, yaml, yml). If omitted, auto-detection is used.",
				"enum":        loaders.FormatHints(),
			},
			"source_id": map[string]interface{}{
				"type":        "string",
				"description": "Optional identifier of the dictation (file name, recording id).",
			},
			"validate": map[string]interface{}{
				"type":        "boolean",
				"description": "Check the produced document against the report schema before returning it.",
			},
		},
	},
}

// InputExtractPatientRecord is the input for the ExtractPatientRecord tool.
type InputExtractPatientRecord struct {
	Transcript string `json:"transcript"`
	Format     string `json:"format"`
	SourceID   string `json:"source_id"`
	Validate   bool   `json:"validate"`
}

// OutputExtractPatientRecord is the output for the ExtractPatientRecord tool.
type OutputExtractPatientRecord struct {
	// Document is the patient record with its FHIR projection.
	Document report.Document `json:"document"`
	// LoaderUsed is the name of the transcript loader that was selected.
	LoaderUsed string `json:"loader_used"`
	// Unresolved lists measurement candidates dropped for lack of a numeric value.
	Unresolved []extraction.Candidate `json:"unresolved"`
	Counts     extraction.Counts      `json:"counts"`
}

// defaultReader builds a transcript Reader with the default loaders.
func defaultReader() *transcript.Reader {
	return transcript.NewReader(loaders.Default()...)
}

// ExtractPatientRecord loads the transcript, runs the extraction pipeline and
// returns the report document.
func ExtractPatientRecord(ctx context.Context, _ *mcp.CallToolRequest, input InputExtractPatientRecord) (*mcp.CallToolResult, OutputExtractPatientRecord, error) {
	sourceID := input.SourceID
	if sourceID == "" {
		sourceID = "unknown"
	}

	read, err := defaultReader().ReadWithMeta(ctx, transcript.Source{
		Content: []byte(input.Transcript),
		Format:  input.Format,
		ID:      sourceID,
	})
	if err != nil {
		return nil, OutputExtractPatientRecord{}, err
	}

	result := extraction.NewPipeline().RunWithMeta(read.Transcript.Text)
	doc := report.Build(result.Record)

	if input.Validate {
		encoded, err := report.Marshal(doc)
		if err != nil {
			return nil, OutputExtractPatientRecord{}, err
		}
		if err := report.Validate(encoded); err != nil {
			return nil, OutputExtractPatientRecord{}, fmt.Errorf("source %q: %w", sourceID, err)
		}
	}

	unresolved := result.Unresolved
	if unresolved == nil {
		unresolved = []extraction.Candidate{}
	}
	return nil, OutputExtractPatientRecord{
		Document:   doc,
		LoaderUsed: read.LoaderUsed,
		Unresolved: unresolved,
		Counts:     result.Counts,
	}, nil
}

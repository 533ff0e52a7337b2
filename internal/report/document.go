// SPDX-License-Identifier: Apache-2.0

// Package report renders a PatientRecord into the document consumed by the
// report generators. Key names and order are part of the contract.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/fisapacient/fisa-mcp/internal/extraction"
	"github.com/fisapacient/fisa-mcp/internal/fhir"
)

// Document is a PatientRecord plus its FHIR projection. Field order here is
// the serialized key order.
type Document struct {
	Measurements     []extraction.Measurement `json:"masuratori_ecografice" yaml:"masuratori_ecografice"`
	Symptoms         []string                 `json:"simptome" yaml:"simptome"`
	Diagnoses        []string                 `json:"diagnostice" yaml:"diagnostice"`
	Medications      []extraction.Medication  `json:"medicamente" yaml:"medicamente"`
	Notes            []string                 `json:"observatii" yaml:"observatii"`
	FHIRObservations []fhir.Observation       `json:"fhir_observations" yaml:"fhir_observations"`
}

// Build attaches the FHIR projection to the record.
func Build(record extraction.PatientRecord) Document {
	return Document{
		Measurements:     nonNil(record.Measurements),
		Symptoms:         nonNil(record.Symptoms),
		Diagnoses:        nonNil(record.Diagnoses),
		Medications:      nonNil(record.Medications),
		Notes:            nonNil(record.Notes),
		FHIRObservations: fhir.Project(record.Measurements),
	}
}

// Marshal renders the document as indented JSON. Diacritics and other
// non-ASCII text are written literally. Whole-number values are written
// without a fraction ("8", not "8.0"), so consumers that print the raw
// number see "8".
func Marshal(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalYAML renders the document as YAML with the same keys as Marshal.
func MarshalYAML(doc Document) ([]byte, error) {
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document as yaml: %w", err)
	}
	return out, nil
}

// Render encodes the document in the named format ("json" or "yaml").
func Render(doc Document, format string) ([]byte, error) {
	switch format {
	case "", FormatJSON:
		return Marshal(doc)
	case FormatYAML:
		return MarshalYAML(doc)
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

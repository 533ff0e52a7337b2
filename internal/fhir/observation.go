// SPDX-License-Identifier: Apache-2.0

// Package fhir projects extracted measurements onto a minimal FHIR R4
// Observation shape. Only the fields the report consumers read are modeled
// and nothing is validated against the FHIR profiles.
package fhir

import (
	"fmt"

	"github.com/fisapacient/fisa-mcp/internal/extraction"
)

const (
	ObservationCategorySystem = "http://terminology.hl7.org/CodeSystem/observation-category"
	LOINCSystem               = "http://loinc.org"
	UCUMSystem                = "http://unitsofmeasure.org"

	// CardiacEchoCode is the LOINC code used for every cardiac ultrasound measurement.
	CardiacEchoCode = "79376-8"
)

type Coding struct {
	System  string `json:"system" yaml:"system"`
	Code    string `json:"code" yaml:"code"`
	Display string `json:"display" yaml:"display"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty" yaml:"coding,omitempty"`
	Text   string   `json:"text,omitempty" yaml:"text,omitempty"`
}

// Quantity carries the measured value. Value has no omitempty: zero is a
// valid dictated measurement.
type Quantity struct {
	Value  float64 `json:"value" yaml:"value"`
	Unit   string  `json:"unit" yaml:"unit"`
	System string  `json:"system" yaml:"system"`
	Code   string  `json:"code" yaml:"code"`
}

type Observation struct {
	ResourceType   string            `json:"resourceType" yaml:"resourceType"`
	ID             string            `json:"id" yaml:"id"`
	Status         string            `json:"status" yaml:"status"`
	Category       []CodeableConcept `json:"category" yaml:"category"`
	Code           CodeableConcept   `json:"code" yaml:"code"`
	ValueQuantity  Quantity          `json:"valueQuantity" yaml:"valueQuantity"`
	Interpretation []CodeableConcept `json:"interpretation" yaml:"interpretation"`
}

// Project maps each measurement, in order, to an Observation with id obs-1, obs-2, ...
func Project(measurements []extraction.Measurement) []Observation {
	observations := make([]Observation, 0, len(measurements))
	for i, m := range measurements {
		observations = append(observations, newObservation(i+1, m))
	}
	return observations
}

func newObservation(n int, m extraction.Measurement) Observation {
	return Observation{
		ResourceType: "Observation",
		ID:           fmt.Sprintf("obs-%d", n),
		Status:       "final",
		Category: []CodeableConcept{{
			Coding: []Coding{{
				System:  ObservationCategorySystem,
				Code:    "imaging",
				Display: "Imaging",
			}},
		}},
		Code: CodeableConcept{
			Coding: []Coding{{
				System:  LOINCSystem,
				Code:    CardiacEchoCode,
				Display: m.Structure,
			}},
			Text: m.Structure,
		},
		ValueQuantity: Quantity{
			Value:  m.Value,
			Unit:   m.Unit,
			System: UCUMSystem,
			Code:   m.Unit,
		},
		Interpretation: []CodeableConcept{{
			Text: "Măsurătoare ecografică: " + m.Structure,
		}},
	}
}

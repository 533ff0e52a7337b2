// SPDX-License-Identifier: Apache-2.0

package extraction

import "strings"

// Candidate is a structure/value pair whose value could not be resolved.
type Candidate struct {
	Structure string `json:"structure"`
	Value     string `json:"value"`
}

// ExtractMeasurements scans the transcript for every known structure followed
// by a dictated value. Matches whose value does not resolve are dropped.
// Overlapping matches from different structures are all reported.
func ExtractMeasurements(text string) []Measurement {
	measurements, _ := extractMeasurements(Fold(text))
	return measurements
}

func extractMeasurements(folded string) ([]Measurement, []Candidate) {
	measurements := make([]Measurement, 0)
	var unresolved []Candidate

	for _, rule := range structureRules {
		for _, m := range rule.FindAllStringSubmatch(folded, -1) {
			structure := strings.TrimSpace(m[1])
			raw := strings.TrimSpace(m[2])

			value, ok := Resolve(raw)
			if !ok {
				unresolved = append(unresolved, Candidate{Structure: structure, Value: raw})
				continue
			}

			unit := m[3]
			if unit == "" {
				unit = DefaultUnit
			}
			measurements = append(measurements, Measurement{
				Structure: structure,
				Value:     value,
				Unit:      unit,
				Type:      CardiacUltrasound,
			})
		}
	}
	return measurements, unresolved
}

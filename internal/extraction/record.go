// SPDX-License-Identifier: Apache-2.0

package extraction

// Assemble merges the four extraction results into a PatientRecord. The
// manual review note is added only when measurements, symptoms and diagnoses
// are all empty; medications alone do not count as useful content.
func Assemble(measurements []Measurement, symptoms, diagnoses []string, medications []Medication) PatientRecord {
	notes := make([]string, 0, 1)
	if len(measurements) == 0 && len(symptoms) == 0 && len(diagnoses) == 0 {
		notes = append(notes, ManualReviewNote)
	}
	return PatientRecord{
		Measurements: orEmpty(measurements),
		Symptoms:     orEmpty(symptoms),
		Diagnoses:    orEmpty(diagnoses),
		Medications:  orEmpty(medications),
		Notes:        notes,
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// SPDX-License-Identifier: Apache-2.0

package extraction

// Pipeline runs the four extraction passes over a transcript and assembles
// the result. It holds no state and is safe for concurrent use.
type Pipeline struct{}

// NewPipeline creates a new Pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Counts is the number of entities found per class.
type Counts struct {
	Measurements int `json:"measurements"`
	Medications  int `json:"medications"`
	Symptoms     int `json:"symptoms"`
	Diagnoses    int `json:"diagnoses"`
}

// RunResult is the output of a pipeline run with its metadata.
type RunResult struct {
	Record PatientRecord
	// Unresolved holds the measurement candidates dropped because their
	// value was not a known number. The engine does not report them itself.
	Unresolved []Candidate
	Counts     Counts
}

func (p *Pipeline) Run(text string) PatientRecord {
	return p.RunWithMeta(text).Record
}

func (p *Pipeline) RunWithMeta(text string) RunResult {
	folded := Fold(text)

	measurements, unresolved := extractMeasurements(folded)
	symptoms := extractSymptoms(folded)
	diagnoses := extractDiagnoses(folded)
	medications := extractMedications(folded)

	return RunResult{
		Record:     Assemble(measurements, symptoms, diagnoses, medications),
		Unresolved: unresolved,
		Counts: Counts{
			Measurements: len(measurements),
			Medications:  len(medications),
			Symptoms:     len(symptoms),
			Diagnoses:    len(diagnoses),
		},
	}
}

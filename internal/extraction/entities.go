// SPDX-License-Identifier: Apache-2.0

package extraction

const (
	// DefaultUnit is used when a measurement is dictated without a unit.
	DefaultUnit = "mm"
	// CardiacUltrasound tags every measurement produced by the structure table.
	CardiacUltrasound = "ecografie_cardiaca"
	// UndefinedDosage marks a medication mentioned without a dosage.
	UndefinedDosage = "nedefinit"
	// PerPrescription is the only frequency the engine ever reports.
	PerPrescription = "conform prescripție"
	// ManualReviewNote is added when nothing clinically useful was extracted.
	ManualReviewNote = "Text neprocesabil - necesită revizuire manuală"
)

// Measurement is a single anatomical measurement read from the transcript.
type Measurement struct {
	Structure string  `json:"structura_anatomica" yaml:"structura_anatomica"`
	Value     float64 `json:"valoare_numerica" yaml:"valoare_numerica"`
	Unit      string  `json:"unitate_masura" yaml:"unitate_masura"`
	Type      string  `json:"tip_masurare" yaml:"tip_masurare"`
}

type Medication struct {
	Name      string `json:"nume" yaml:"nume"`
	Dosage    string `json:"dozaj" yaml:"dozaj"`
	Frequency string `json:"frecventa" yaml:"frecventa"`
}

// PatientRecord is the structured result of one transcript.
// Slices are never nil so that every key is always serialized as an array.
type PatientRecord struct {
	Measurements []Measurement `json:"masuratori_ecografice" yaml:"masuratori_ecografice"`
	Symptoms     []string      `json:"simptome" yaml:"simptome"`
	Diagnoses    []string      `json:"diagnostice" yaml:"diagnostice"`
	Medications  []Medication  `json:"medicamente" yaml:"medicamente"`
	Notes        []string      `json:"observatii" yaml:"observatii"`
}

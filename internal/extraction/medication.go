// SPDX-License-Identifier: Apache-2.0

package extraction

import "strings"

// ExtractMedications reports every vocabulary medication contained in the
// transcript. Containment is a plain substring test, so "paracetamolul"
// also reports Paracetamol. Only the dosage right after the first mention
// is read; the frequency is never inferred.
func ExtractMedications(text string) []Medication {
	return extractMedications(Fold(text))
}

func extractMedications(folded string) []Medication {
	medications := make([]Medication, 0)
	for _, rule := range medicationRules {
		if !strings.Contains(folded, rule.name) {
			continue
		}
		m := rule.re.FindStringSubmatch(folded)
		if m == nil {
			continue
		}
		dosage := strings.TrimSpace(m[1])
		if dosage == "" {
			dosage = UndefinedDosage
		}
		medications = append(medications, Medication{
			Name:      capitalize(rule.name),
			Dosage:    dosage,
			Frequency: PerPrescription,
		})
	}
	return medications
}

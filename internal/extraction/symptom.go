// SPDX-License-Identifier: Apache-2.0

package extraction

import "strings"

// ExtractSymptoms reports every vocabulary phrase present in the transcript.
// Negations are not handled: "fără dispnee" still reports Dispnee.
func ExtractSymptoms(text string) []string {
	return extractSymptoms(Fold(text))
}

func extractSymptoms(folded string) []string {
	symptoms := make([]string, 0)
	for _, phrase := range symptomPhrases {
		if strings.Contains(folded, phrase) {
			symptoms = append(symptoms, capitalize(phrase))
		}
	}
	return symptoms
}

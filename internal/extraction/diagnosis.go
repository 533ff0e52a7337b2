// SPDX-License-Identifier: Apache-2.0

package extraction

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ExtractDiagnoses returns the text following each "diagnostic" marker up to
// the next full stop. Any wording is accepted.
func ExtractDiagnoses(text string) []string {
	return extractDiagnoses(Fold(text))
}

func extractDiagnoses(folded string) []string {
	diagnoses := make([]string, 0)
	for _, m := range diagnosisRe.FindAllStringSubmatch(folded, -1) {
		d := strings.TrimSpace(m[1])
		if d == "" {
			continue
		}
		diagnoses = append(diagnoses, capitalize(d))
	}
	return diagnoses
}

// capitalize upper-cases the first letter and leaves the rest untouched.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fisapacient/fisa-mcp/internal/extraction"
)

const rule = "----------------------------------------"

// writeSummary prints the record one class at a time, the way the dictation
// is reviewed before the report is generated.
func writeSummary(w io.Writer, record extraction.PatientRecord) {
	section(w, "MĂSURĂTORI ECOGRAFICE", len(record.Measurements), "Nicio măsurătoare detectată", func() {
		for i, m := range record.Measurements {
			fmt.Fprintf(w, "   %d. %s: %s %s\n", i+1, strings.ToUpper(m.Structure), strconv.FormatFloat(m.Value, 'f', -1, 64), m.Unit)
		}
	})
	section(w, "MEDICAMENTE", len(record.Medications), "Niciun medicament detectat", func() {
		for _, m := range record.Medications {
			fmt.Fprintf(w, "   • %s - %s (%s)\n", m.Name, m.Dosage, m.Frequency)
		}
	})
	section(w, "SIMPTOME", len(record.Symptoms), "Niciun simptom detectat", func() {
		for _, s := range record.Symptoms {
			fmt.Fprintf(w, "   • %s\n", s)
		}
	})
	section(w, "DIAGNOSTICE", len(record.Diagnoses), "Niciun diagnostic detectat", func() {
		for _, d := range record.Diagnoses {
			fmt.Fprintf(w, "   • %s\n", d)
		}
	})
	for _, n := range record.Notes {
		fmt.Fprintf(w, "\n%s\n", n)
	}
}

func section(w io.Writer, title string, n int, empty string, body func()) {
	fmt.Fprintf(w, "\n%s:\n%s\n", title, rule)
	if n == 0 {
		fmt.Fprintf(w, "   %s\n", empty)
		return
	}
	body()
}

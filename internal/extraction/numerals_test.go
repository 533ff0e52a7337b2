// SPDX-License-Identifier: Apache-2.0

package extraction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fisapacient/fisa-mcp/internal/extraction"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		want      float64
		wantFound bool
	}{
		{name: "digits", token: "12", want: 12, wantFound: true},
		{name: "decimal point", token: "3.5", want: 3.5, wantFound: true},
		{name: "decimal comma", token: "3,5", want: 3.5, wantFound: true},
		{name: "zero digit", token: "0", want: 0, wantFound: true},
		{name: "surrounding space", token: "  7 ", want: 7, wantFound: true},
		{name: "simple word", token: "opt", want: 8, wantFound: true},
		{name: "upper case word", token: "Zece", want: 10, wantFound: true},
		{name: "diacritic spelling", token: "șase", want: 6, wantFound: true},
		{name: "plain spelling", token: "sase", want: 6, wantFound: true},
		{name: "teen", token: "doisprezece", want: 12, wantFound: true},
		{name: "colloquial teen", token: "paispe", want: 14, wantFound: true},
		{name: "tens", token: "cincizeci", want: 50, wantFound: true},
		{name: "zero word", token: "zero", want: 0, wantFound: true},
		{name: "compound with diacritic", token: "douăzeci și trei", want: 23, wantFound: true},
		{name: "compound plain", token: "treizeci si cinci", want: 35, wantFound: true},
		{name: "compound with unknown part", token: "douazeci si vede", want: 20, wantFound: true},
		{name: "compound summing to zero", token: "zero si zero", wantFound: false},
		{name: "compound of unknown parts", token: "vede si bara", wantFound: false},
		{name: "unknown word", token: "vede", wantFound: false},
		{name: "word containing si", token: "sinusuri", wantFound: false},
		{name: "empty", token: "", wantFound: false},
		{name: "hundreds are not covered", token: "o sută", wantFound: false},
		{name: "infinity spelling", token: "inf", wantFound: false},
		{name: "nan spelling", token: "nan", wantFound: false},
		{name: "negative literal", token: "-4", wantFound: false},
		{name: "signed literal", token: "+5", wantFound: false},
		{name: "hex float literal", token: "0x1p4", wantFound: false},
		{name: "exponent literal", token: "1e3", wantFound: false},
		{name: "cedilla spelling", token: "şase", want: 6, wantFound: true},
		{name: "cedilla compound", token: "douăzeci şi trei", want: 23, wantFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extraction.Resolve(tt.token)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolve_CompoundIsSumOfParts(t *testing.T) {
	tens := map[string]float64{"douăzeci": 20, "treizeci": 30, "patruzeci": 40, "cincizeci": 50}
	ones := map[string]float64{"unu": 1, "doi": 2, "trei": 3, "patru": 4, "cinci": 5, "șase": 6, "sapte": 7, "opt": 8, "nouă": 9}

	for a, av := range tens {
		for b, bv := range ones {
			got, found := extraction.Resolve(a + " și " + b)
			assert.True(t, found, "%s și %s", a, b)
			assert.Equal(t, av+bv, got, "%s și %s", a, b)
		}
	}
}

func TestResolve_EveryNumberWord(t *testing.T) {
	words := map[string]float64{
		"zero":          0,
		"unu":           1,
		"una":           1,
		"doi":           2,
		"două":          2,
		"doua":          2,
		"trei":          3,
		"patru":         4,
		"cinci":         5,
		"șase":          6,
		"sase":          6,
		"șapte":         7,
		"sapte":         7,
		"opt":           8,
		"nouă":          9,
		"noua":          9,
		"zece":          10,
		"unsprezece":    11,
		"doisprezece":   12,
		"douăsprezece":  12,
		"douasprezece":  12,
		"treisprezece":  13,
		"paisprezece":   14,
		"paispe":        14,
		"cincisprezece": 15,
		"șaisprezece":   16,
		"saisprezece":   16,
		"șaptesprezece": 17,
		"saptesprezece": 17,
		"optsprezece":   18,
		"nouăsprezece":  19,
		"nouasprezece":  19,
		"douăzeci":      20,
		"douazeci":      20,
		"treizeci":      30,
		"patruzeci":     40,
		"cincizeci":     50,
	}

	for word, want := range words {
		got, found := extraction.Resolve(word)
		assert.True(t, found, word)
		assert.Equal(t, want, got, word)
	}
}

// SPDX-License-Identifier: Apache-2.0

package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// numberWords maps dictated Romanian number-words to their value.
// Plain spellings (no diacritics) are registered next to the diacritic ones
// because ASR output mixes both.
var numberWords = map[string]int{
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

var (
	conjunction = regexp.MustCompile(`\s+(?:și|si)\s+`)
	// literalNumber admits plain digits only; ParseFloat alone would also take
	// exponents, hex floats, signs, "inf" and "nan".
	literalNumber = regexp.MustCompile(`^\d+(?:[.,]\d+)?$`)
)

// Resolve converts a dictated value into a number. It accepts literal digits
// (with "." or "," as decimal separator), a single number-word, or a compound
// joined by "și" such as "douăzeci și trei". The boolean is false when the
// token could not be resolved.
func Resolve(token string) (float64, bool) {
	token = Fold(strings.TrimSpace(token))
	if token == "" {
		return 0, false
	}

	if v, ok := parseLiteral(token); ok {
		return v, true
	}

	if v, ok := numberWords[token]; ok {
		return float64(v), true
	}

	parts := conjunction.Split(token, -1)
	if len(parts) < 2 {
		return 0, false
	}
	total := 0
	for _, part := range parts {
		if v, ok := numberWords[strings.TrimSpace(part)]; ok {
			total += v
		}
	}
	if total == 0 {
		return 0, false
	}
	return float64(total), true
}

func parseLiteral(token string) (float64, bool) {
	if !literalNumber.MatchString(token) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.Replace(token, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

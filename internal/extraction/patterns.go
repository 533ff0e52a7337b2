// SPDX-License-Identifier: Apache-2.0

package extraction

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// structurePatterns lists the cardiac ultrasound structures the measurement
// pass looks for. Every pattern is tried; order only affects output order.
var structurePatterns = []string{
	`aorta\s+la\s+inel`,
	`aorta\s+la\s+sinusuri`,
	`aort[ăa]\s+ascendent[ăa]`,
	`valva\s+aortic[ăa]`,
	`valva\s+mitral[ăa]`,
	`ventricul\s+st[âa]ng`,
	`ventricul\s+drept`,
	`atriu\s+st[âa]ng`,
	`atriu\s+drept`,
	`sept\s+interventricular`,
	`perete\s+posterior`,
	`frac[țt]ie\s+de\s+ejec[țt]ie`,
	`diametru\s+telediastolic`,
	`diametru\s+telesistolic`,
}

// medicationNames is the closed medication vocabulary. Matching is plain
// substring containment against the folded transcript.
var medicationNames = []string{
	"aspenter",
	"algocalmin",
	"paracetamol",
	"ibuprofen",
	"nurofen",
	"concor",
	"bisoprolol",
	"enalapril",
	"losartan",
	"amlodipină",
	"atorvastatină",
	"simvastatină",
	"metformin",
	"insulină",
}

var symptomPhrases = []string{
	"dureri toracice",
	"durere toracică",
	"dispnee",
	"dificultate în respirație",
	"palpitații",
	"amețeli",
	"oboseală",
	"cefalee",
	"tuse",
	"febră",
}

const (
	letterRun  = `[a-zăâîșț]+`
	valueToken = letterRun + `(?:\s+(?:și|si)\s+` + letterRun + `)?|\d+(?:[.,]\d+)?`
	dosageExpr = `\d+\s*mg|\d+\s*g|o\s+tablet[ăa]|dou[ăa]\s+tablete`
)

type medicationRule struct {
	name string
	re   *regexp.Regexp
}

var (
	structureRules  = compileStructureRules(structurePatterns)
	medicationRules = compileMedicationRules(medicationNames)

	diagnosisRe = regexp.MustCompile(`diagnostic[:\s]+([^.]+)`)
)

// compileStructureRules builds one matcher per structure. Groups: structure,
// value token, unit. The unit must not be followed by a letter or digit, so
// neither "milimetri" nor "mărit" is read as "m". RE2's \b is ASCII-only and
// cannot express this for Romanian letters.
func compileStructureRules(patterns []string) []*regexp.Regexp {
	rules := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		rules = append(rules, regexp.MustCompile(`(?i)(`+p+`)[,:\s]+(`+valueToken+`)\s*(?:(mm|cm|m)(?:$|[^\p{L}\p{N}]))?`))
	}
	return rules
}

func compileMedicationRules(names []string) []medicationRule {
	rules := make([]medicationRule, 0, len(names))
	for _, name := range names {
		rules = append(rules, medicationRule{
			name: name,
			re:   regexp.MustCompile(regexp.QuoteMeta(name) + `\s*(` + dosageExpr + `)?`),
		})
	}
	return rules
}

// cedillaFold maps the legacy cedilla letters some ASR models still emit to
// the comma-below letters used throughout the tables.
var cedillaFold = strings.NewReplacer(
	"ş", "ș", "Ş", "Ș",
	"ţ", "ț", "Ţ", "Ț",
)

// Fold prepares a transcript for matching: NFC composition, cedilla letters
// replaced by their comma-below form, then lower case.
func Fold(text string) string {
	return strings.ToLower(cedillaFold.Replace(norm.NFC.String(text)))
}

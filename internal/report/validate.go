// SPDX-License-Identifier: Apache-2.0

package report

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed document.cue
var documentSchema string

// Validate checks an encoded JSON document against the CUE definition of the
// report contract: all six keys present, no extra keys, and well-formed
// measurement, medication and observation entries.
func Validate(data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(documentSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("failed to compile document schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Document"))

	value := ctx.CompileBytes(data)
	if err := value.Err(); err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	if err := def.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("document does not match schema: %w", err)
	}
	return nil
}

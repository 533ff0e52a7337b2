// SPDX-License-Identifier: Apache-2.0

package transcript

import "context"

// Source describes raw transcript input as handed over by the ASR step.
type Source struct {
	// Content is the raw file or payload content.
	Content []byte
	Format  string
	ID      string
}

// Transcript is the dictated text extracted from a Source.
type Transcript struct {
	Text     string
	Language string
	SourceID string
}

type Loader interface {
	CanHandle(source Source) bool
	Load(ctx context.Context, source Source) (Transcript, error)
	Name() string
}

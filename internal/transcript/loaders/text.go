// SPDX-License-Identifier: Apache-2.0

package loaders

import (
	"context"
	"errors"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fisapacient/fisa-mcp/internal/transcript"
)

// DefaultLanguage is assumed for plain text dictations.
const DefaultLanguage = "ro"

var textFormats = []string{"text", "txt", "plain"}

// TextLoader takes the content as the transcript itself.
type TextLoader struct{}

func NewTextLoader() *TextLoader {
	return &TextLoader{}
}

func (l *TextLoader) Name() string {
	return "text"
}

// CanHandle accepts sources without a format hint and the "text", "txt" and
// "plain" hints. It is meant to be registered last.
func (l *TextLoader) CanHandle(source transcript.Source) bool {
	return source.Format == "" || slices.Contains(textFormats, strings.ToLower(source.Format))
}

func (l *TextLoader) Load(_ context.Context, source transcript.Source) (transcript.Transcript, error) {
	if !utf8.Valid(source.Content) {
		return transcript.Transcript{}, errors.New("transcript is not valid UTF-8")
	}
	return transcript.Transcript{
		Text:     string(source.Content),
		Language: DefaultLanguage,
		SourceID: source.ID,
	}, nil
}

// Default returns the loaders in registration order: the ASR envelope first,
// plain text as the fallback.
func Default() []transcript.Loader {
	return []transcript.Loader{
		NewASRLoader(),
		NewTextLoader(),
	}
}

// FormatHints lists every explicit format hint accepted by the Default loaders.
func FormatHints() []string {
	return slices.Concat(textFormats, asrFormats)
}

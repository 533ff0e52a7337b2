// SPDX-License-Identifier: Apache-2.0

package loaders

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/fisapacient/fisa-mcp/internal/transcript"
)

// asrResult is the subset of a speech-recognition result (Whisper style JSON,
// or the same keys in YAML) needed to recover the transcript.
type asrResult struct {
	Text     *string `yaml:"text"`
	Language string  `yaml:"language"`
	Segments []struct {
		Text string `yaml:"text"`
	} `yaml:"segments"`
}

var (
	asrFormats   = []string{"asr", "json", "yaml", "yml"}
	envelopeKeys = []string{"text:", "language:", "segments:"}
)

// ASRLoader reads the transcript out of a recognition result envelope.
// When the top-level text is missing the segment texts are joined.
type ASRLoader struct{}

func NewASRLoader() *ASRLoader {
	return &ASRLoader{}
}

func (l *ASRLoader) Name() string {
	return "asr"
}

// CanHandle returns true for "asr", "json" and "yaml" format hints, for JSON
// objects, and for YAML whose first line is one of the envelope keys. Free
// dictation such as "diagnostic: ..." is left to the text loader.
func (l *ASRLoader) CanHandle(source transcript.Source) bool {
	if slices.Contains(asrFormats, strings.ToLower(source.Format)) {
		return true
	}
	content := strings.TrimSpace(string(source.Content))
	if strings.HasPrefix(content, "{") {
		return true
	}
	first := strings.SplitN(content, "\n", 2)[0]
	for _, key := range envelopeKeys {
		if strings.HasPrefix(first, key) {
			return true
		}
	}
	return false
}

func (l *ASRLoader) Load(_ context.Context, source transcript.Source) (transcript.Transcript, error) {
	var result asrResult
	if err := yaml.Unmarshal(source.Content, &result); err != nil {
		return transcript.Transcript{}, fmt.Errorf("failed to unmarshal ASR result: %w", err)
	}

	var text string
	switch {
	case result.Text != nil:
		text = *result.Text
	case len(result.Segments) > 0:
		parts := make([]string, 0, len(result.Segments))
		for _, s := range result.Segments {
			if t := strings.TrimSpace(s.Text); t != "" {
				parts = append(parts, t)
			}
		}
		text = strings.Join(parts, " ")
	default:
		return transcript.Transcript{}, errors.New("ASR result has neither text nor segments")
	}

	return transcript.Transcript{
		Text:     strings.TrimSpace(text),
		Language: result.Language,
		SourceID: source.ID,
	}, nil
}

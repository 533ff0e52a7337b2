// SPDX-License-Identifier: Apache-2.0

package transcript

import (
	"context"
	"fmt"
)

type Reader struct {
	loaders []Loader
}

// NewReader creates a Reader that tries the loaders in the given order.
func NewReader(loaders ...Loader) *Reader {
	return &Reader{loaders: loaders}
}

// ReadResult is a loaded transcript together with the loader that produced it.
type ReadResult struct {
	Transcript Transcript
	LoaderUsed string
}

func (r *Reader) Read(ctx context.Context, source Source) (Transcript, error) {
	result, err := r.ReadWithMeta(ctx, source)
	if err != nil {
		return Transcript{}, err
	}
	return result.Transcript, nil
}

func (r *Reader) ReadWithMeta(ctx context.Context, source Source) (ReadResult, error) {
	loader, err := r.selectLoader(source)
	if err != nil {
		return ReadResult{}, err
	}

	t, err := loader.Load(ctx, source)
	if err != nil {
		return ReadResult{}, fmt.Errorf("loader %q failed: %w", loader.Name(), err)
	}
	if t.SourceID == "" {
		t.SourceID = source.ID
	}
	return ReadResult{Transcript: t, LoaderUsed: loader.Name()}, nil
}

// selectLoader returns the first registered loader that can handle the given source.
func (r *Reader) selectLoader(source Source) (Loader, error) {
	for _, loader := range r.loaders {
		if loader.CanHandle(source) {
			return loader, nil
		}
	}
	return nil, fmt.Errorf("unsupported transcript format: no loader found for source %q (format hint: %q)", source.ID, source.Format)
}

// RegisteredLoaders returns the loader names in selection order.
func (r *Reader) RegisteredLoaders() []string {
	var names []string
	for _, loader := range r.loaders {
		names = append(names, loader.Name())
	}
	return names
}

package assets

import (
	"context"
	"errors"
	"fmt"
)

// Locate tries each candidate identifier in order and returns the first model
// that loads. Failed candidates are not retried, the list is not reordered or
// deduplicated, and case-variant spellings are independent candidates. The
// context is checked between attempts so a pipeline deadline cuts the search
// short.
//
// When every candidate fails, the returned error wraps ErrNotFound along with
// each candidate's own failure, so the log shows which were missing and which
// were malformed.
func Locate(ctx context.Context, loader Loader, candidates []string) (*Model, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidates: %w", ErrNotFound)
	}
	failures := make([]error, 0, len(candidates))
	for _, id := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		model, err := loader.Load(ctx, id)
		if err == nil {
			return model, nil
		}
		failures = append(failures, err)
	}
	return nil, fmt.Errorf("%w: %w", ErrNotFound, errors.Join(failures...))
}

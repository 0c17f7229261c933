package provider

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// RenderFunc executes one generation attempt. A batched backend may hand
// back more than one image per attempt.
type RenderFunc func(ctx context.Context, req Request, settings Settings) ([]string, error)

// Generate runs the shared generation pipeline for a plugin: parse the raw
// settings against the active schema, fan the request out into concurrent
// attempts and aggregate the outcome. Configuration failures are absorbed
// into a reportable result, every other failure is returned unmodified.
func Generate(ctx context.Context, p Plugin, req Request, raw map[string]any, render RenderFunc) (*Result, error) {
	settings, err := p.ParseSettings(raw)

	if err != nil {
		if IsConfigurationError(err) {
			return &Result{ID: uuid.NewString(), Reason: ReasonConfigError}, nil
		}

		return nil, err
	}

	images, err := fanout(ctx, req.Count, func(ctx context.Context, index int) ([]string, error) {
		return render(ctx, req, settings)
	})

	if err != nil {
		if IsConfigurationError(err) {
			return &Result{ID: uuid.NewString(), Reason: ReasonConfigError}, nil
		}

		return nil, err
	}

	return &Result{ID: uuid.NewString(), Images: images}, nil
}

// fanout launches n attempts concurrently and flattens their images in
// attempt order. Attempts are never cancelled on sibling failure; every
// attempt runs to completion before the batch is judged. A configuration
// failure on any attempt outranks other failures, otherwise the failure of
// the lowest attempt index wins.
func fanout(ctx context.Context, n int, task func(ctx context.Context, index int) ([]string, error)) ([]string, error) {
	if n < 1 {
		n = 1
	}

	batches := make([][]string, n)
	errs := make([]error, n)

	var wg sync.WaitGroup

	for i := range n {
		wg.Add(1)

		go func() {
			defer wg.Done()
			batches[i], errs[i] = task(ctx, i)
		}()
	}

	wg.Wait()

	var failure error

	for _, err := range errs {
		if err == nil {
			continue
		}

		if IsConfigurationError(err) {
			return nil, err
		}

		if failure == nil {
			failure = err
		}
	}

	if failure != nil {
		return nil, failure
	}

	var images []string

	for _, batch := range batches {
		images = append(images, batch...)
	}

	return images, nil
}

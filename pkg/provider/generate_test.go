package provider

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubPlugin struct {
	schema []Field
}

func (p *stubPlugin) ID() string      { return "stub" }
func (p *stubPlugin) Name() string    { return "Stub" }
func (p *stubPlugin) Enabled() bool   { return true }
func (p *stubPlugin) Models() []Model { return nil }
func (p *stubPlugin) Schema() []Field { return p.schema }

func (p *stubPlugin) ParseSettings(raw map[string]any) (Settings, error) {
	return ParseSettings(p.schema, raw)
}

func (p *stubPlugin) Generate(ctx context.Context, req Request, raw map[string]any) (*Result, error) {
	return nil, nil
}

func TestGenerateFanout(t *testing.T) {
	var attempts atomic.Int32

	plugin := &stubPlugin{}

	result, err := Generate(context.Background(), plugin, Request{Count: 3}, nil,
		func(ctx context.Context, req Request, settings Settings) ([]string, error) {
			attempts.Add(1)
			return []string{"image"}, nil
		})

	require.NoError(t, err)
	require.Equal(t, int32(3), attempts.Load())
	require.Len(t, result.Images, 3)
	require.NotEmpty(t, result.ID)
	require.Empty(t, result.Reason)
}

func TestGenerateDefaultsCount(t *testing.T) {
	var attempts atomic.Int32

	plugin := &stubPlugin{}

	result, err := Generate(context.Background(), plugin, Request{}, nil,
		func(ctx context.Context, req Request, settings Settings) ([]string, error) {
			attempts.Add(1)
			return []string{"image"}, nil
		})

	require.NoError(t, err)
	require.Equal(t, int32(1), attempts.Load())
	require.Len(t, result.Images, 1)
}

func TestFanoutPreservesOrder(t *testing.T) {
	images, err := fanout(context.Background(), 8, func(ctx context.Context, index int) ([]string, error) {
		// later attempts finish first, flattening must reassemble by index
		time.Sleep(time.Duration(8-index) * time.Millisecond)

		return []string{fmt.Sprintf("image-%02d", index)}, nil
	})

	require.NoError(t, err)
	require.Equal(t, []string{
		"image-00", "image-01", "image-02", "image-03",
		"image-04", "image-05", "image-06", "image-07",
	}, images)
}

func TestGenerateFlattensBatches(t *testing.T) {
	plugin := &stubPlugin{}

	result, err := Generate(context.Background(), plugin, Request{Count: 2}, nil,
		func(ctx context.Context, req Request, settings Settings) ([]string, error) {
			return []string{"first", "second"}, nil
		})

	require.NoError(t, err)
	require.Len(t, result.Images, 4)
}

func TestGenerateSettingsFailure(t *testing.T) {
	plugin := &stubPlugin{
		schema: []Field{
			{Key: "api_key", Kind: FieldSecret, Required: true},
		},
	}

	var attempts atomic.Int32

	result, err := Generate(context.Background(), plugin, Request{Count: 2}, map[string]any{},
		func(ctx context.Context, req Request, settings Settings) ([]string, error) {
			attempts.Add(1)
			return nil, nil
		})

	require.NoError(t, err)
	require.Zero(t, attempts.Load())
	require.Empty(t, result.Images)
	require.Equal(t, ReasonConfigError, result.Reason)
}

func TestGenerateConfigurationFailureWins(t *testing.T) {
	plugin := &stubPlugin{}

	var attempt atomic.Int32

	result, err := Generate(context.Background(), plugin, Request{Count: 3}, nil,
		func(ctx context.Context, req Request, settings Settings) ([]string, error) {
			switch attempt.Add(1) {
			case 1:
				return nil, &BackendError{Status: 500, StatusText: "500 Internal Server Error"}
			case 2:
				return nil, NewConfigurationError("bad key")
			default:
				return []string{"image"}, nil
			}
		})

	require.NoError(t, err)
	require.Empty(t, result.Images)
	require.Equal(t, ReasonConfigError, result.Reason)
}

func TestGenerateBackendFailurePropagates(t *testing.T) {
	plugin := &stubPlugin{}

	var attempt atomic.Int32

	_, err := Generate(context.Background(), plugin, Request{Count: 2}, nil,
		func(ctx context.Context, req Request, settings Settings) ([]string, error) {
			if attempt.Add(1) == 1 {
				return nil, &BackendError{Status: 500, StatusText: "500 Internal Server Error", Body: "boom"}
			}

			return []string{"image"}, nil
		})

	require.Error(t, err)
	require.True(t, IsBackendError(err))
}

func TestGenerateRunsAllAttempts(t *testing.T) {
	plugin := &stubPlugin{}

	var attempts atomic.Int32

	_, err := Generate(context.Background(), plugin, Request{Count: 4}, nil,
		func(ctx context.Context, req Request, settings Settings) ([]string, error) {
			attempts.Add(1)
			return nil, &BackendError{Status: 503, StatusText: "503 Service Unavailable"}
		})

	require.Error(t, err)
	require.Equal(t, int32(4), attempts.Load())
}

package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/easel-ai/easel/pkg/datauri"
	"github.com/easel-ai/easel/pkg/provider"

	"github.com/openai/openai-go/v3"
)

func convertError(err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) {
		if apierr.StatusCode == http.StatusUnauthorized || apierr.StatusCode == http.StatusNotFound {
			return provider.NewConfigurationError("openai rejected the request: %d", apierr.StatusCode)
		}

		return &provider.BackendError{
			Status:     apierr.StatusCode,
			StatusText: http.StatusText(apierr.StatusCode),

			Body: apierr.Error(),
		}
	}

	return err
}

func (p *Plugin) getData(ctx context.Context, image openai.Image) ([]byte, error) {
	if image.URL != "" {
		if strings.HasPrefix(image.URL, "data:") {
			_, data, err := datauri.Decode(image.URL)
			return data, err
		}

		req, err := http.NewRequestWithContext(ctx, "GET", image.URL, nil)

		if err != nil {
			return nil, err
		}

		client := p.client

		if client == nil {
			client = http.DefaultClient
		}

		resp, err := client.Do(req)

		if err != nil {
			return nil, err
		}

		defer resp.Body.Close()

		return io.ReadAll(resp.Body)
	}

	if image.B64JSON != "" {
		return base64.StdEncoding.DecodeString(image.B64JSON)
	}

	return nil, errors.New("invalid image data")
}

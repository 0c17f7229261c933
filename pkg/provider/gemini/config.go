package gemini

import (
	"context"
	"net/http"

	"github.com/easel-ai/easel/pkg/provider"

	"google.golang.org/genai"
)

type Config struct {
	client *http.Client
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

func (c *Config) newClient(ctx context.Context, settings provider.Settings) (*genai.Client, error) {
	config := &genai.ClientConfig{
		APIKey:  settings.String("api_key"),
		Backend: genai.BackendGeminiAPI,

		HTTPClient: c.client,
	}

	return genai.NewClient(ctx, config)
}

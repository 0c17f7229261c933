package openai

import (
	"net/http"
	"strings"

	"github.com/easel-ai/easel/pkg/provider"

	"github.com/openai/openai-go/v3/option"
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

func (c *Config) Options(settings provider.Settings) []option.RequestOption {
	url := settings.String("base_url")

	if url == "" {
		url = "https://api.openai.com/v1/"
	}

	url = strings.TrimRight(url, "/") + "/"

	client := c.client

	if client == nil {
		client = http.DefaultClient
	}

	options := []option.RequestOption{
		option.WithBaseURL(url),
		option.WithHTTPClient(client),
	}

	if token := settings.String("api_key"); token != "" {
		options = append(options, option.WithAPIKey(token))
	}

	return options
}

package workersai

import (
	"net/http"

	"github.com/easel-ai/easel/pkg/provider"
)

type Config struct {
	url string

	client *http.Client

	binding      Binding
	capabilities provider.Capabilities
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

func WithURL(url string) Option {
	return func(c *Config) {
		c.url = url
	}
}

func WithBinding(binding Binding) Option {
	return func(c *Config) {
		c.binding = binding
	}
}

func WithCapabilities(capabilities provider.Capabilities) Option {
	return func(c *Config) {
		c.capabilities = capabilities
	}
}

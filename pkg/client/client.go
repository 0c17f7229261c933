package client

import (
	"net/http"
)

type Client struct {
	Models    ModelService
	Providers ProviderService

	Generations GenerationService
}

func New(url string, opts ...RequestOption) *Client {
	opts = append(opts, WithURL(url))

	return &Client{
		Models:    NewModelService(opts...),
		Providers: NewProviderService(opts...),

		Generations: NewGenerationService(opts...),
	}
}

func newRequestConfig(opts ...RequestOption) *RequestConfig {
	c := &RequestConfig{
		Client: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func Ptr[T any](v T) *T {
	return &v
}

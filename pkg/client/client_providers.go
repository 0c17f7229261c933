package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

type ProviderService struct {
	Options []RequestOption
}

func NewProviderService(opts ...RequestOption) ProviderService {
	return ProviderService{
		Options: opts,
	}
}

type Provider struct {
	ID string `json:"id"`

	Name    string `json:"name,omitempty"`
	Enabled bool   `json:"enabled,omitempty"`

	Schema []Field `json:"schema,omitempty"`
}

type Field struct {
	Key  string `json:"key"`
	Kind string `json:"kind"`

	Required bool `json:"required,omitempty"`
	Default  any  `json:"default,omitempty"`
}

func (r *ProviderService) List(ctx context.Context, opts ...RequestOption) ([]Provider, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/v1/providers", nil)
	req.Header.Set("Content-Type", "application/json")

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	type ProviderList struct {
		Providers []Provider `json:"data"`
	}

	var result ProviderList

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result.Providers, nil
}

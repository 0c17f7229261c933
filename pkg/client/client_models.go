package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

type ModelService struct {
	Options []RequestOption
}

func NewModelService(opts ...RequestOption) ModelService {
	return ModelService{
		Options: opts,
	}
}

type Model struct {
	ID string `json:"id"`

	Name     string `json:"name,omitempty"`
	Provider string `json:"provider,omitempty"`

	Ability string `json:"ability,omitempty"`
	Enabled bool   `json:"enabled,omitempty"`

	AspectRatios []string `json:"aspect_ratios,omitempty"`
}

func (r *ModelService) List(ctx context.Context, opts ...RequestOption) ([]Model, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/v1/models", nil)
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

	type ModelList struct {
		Models []Model `json:"data"`
	}

	var result ModelList

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result.Models, nil
}

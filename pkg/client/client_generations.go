package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

type GenerationService struct {
	Options []RequestOption
}

func NewGenerationService(opts ...RequestOption) GenerationService {
	return GenerationService{
		Options: opts,
	}
}

type GenerationRequest struct {
	Provider string `json:"provider,omitempty"`

	Model  string `json:"model"`
	Prompt string `json:"prompt"`

	AspectRatio string `json:"aspect_ratio,omitempty"`

	Images []string `json:"images,omitempty"`

	N int `json:"n,omitempty"`
}

type Generation struct {
	ID string `json:"id"`

	// Images holds the generated images as data URIs.
	Images []string `json:"images"`

	ErrorReason string `json:"error_reason,omitempty"`
}

func (r *GenerationService) New(ctx context.Context, input GenerationRequest, opts ...RequestOption) (*Generation, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	body, err := json.Marshal(input)

	if err != nil {
		return nil, err
	}

	req, _ := http.NewRequestWithContext(ctx, "POST", c.URL+"/v1/images/generations", bytes.NewReader(body))
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

	var result Generation

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

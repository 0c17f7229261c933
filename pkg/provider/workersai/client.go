package workersai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/easel-ai/easel/pkg/provider"
)

// Client calls the Workers AI REST API.
type Client struct {
	url string

	client *http.Client
}

func NewClient(url string, client *http.Client) *Client {
	if url == "" {
		url = "https://api.cloudflare.com/client/v4"
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		url: strings.TrimRight(url, "/"),

		client: client,
	}
}

type Output struct {
	MediaType string
	Image     string
}

// Run invokes a model over REST. A 401 or 404 means the credentials or
// the account/model id are wrong and surfaces as a configuration problem,
// every other non-success status carries its detail in a BackendError.
func (c *Client) Run(ctx context.Context, accountID, apiKey, model string, params any) (*Output, error) {
	body, err := json.Marshal(params)

	if err != nil {
		return nil, err
	}

	url := c.url + "/accounts/" + accountID + "/ai/run/" + model

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))

	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusNotFound {
		return nil, provider.NewConfigurationError("workers ai rejected the request: %s", resp.Status)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)

		return nil, &provider.BackendError{
			Status:     resp.StatusCode,
			StatusText: resp.Status,

			Body: string(data),
		}
	}

	contentType := resp.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "image/") {
		data, err := io.ReadAll(resp.Body)

		if err != nil {
			return nil, err
		}

		mediaType, _, _ := strings.Cut(contentType, ";")

		return &Output{
			MediaType: mediaType,
			Image:     base64.StdEncoding.EncodeToString(data),
		}, nil
	}

	var envelope struct {
		Result struct {
			Image string `json:"image"`
		} `json:"result"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}

	if envelope.Result.Image == "" {
		return nil, errors.New("unexpected workers ai response shape")
	}

	return &Output{
		MediaType: "image/png",
		Image:     envelope.Result.Image,
	}, nil
}

package api_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/easel-ai/easel/config"
	"github.com/easel-ai/easel/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

var imageBytes = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

func newServer(t *testing.T, backend http.HandlerFunc) *httptest.Server {
	t.Helper()

	upstream := httptest.NewServer(backend)
	t.Cleanup(upstream.Close)

	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
providers:
  - type: workersai
    url: ` + upstream.URL + `
    settings:
      account_id: acc
      api_key: key
`

	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	h, err := api.New(cfg)
	require.NoError(t, err)

	r := chi.NewRouter()
	h.Attach(r)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return server
}

func envelopeBackend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	json.NewEncoder(w).Encode(map[string]any{
		"result": map[string]any{
			"image": base64.StdEncoding.EncodeToString(imageBytes),
		},
	})
}

func TestGenerations(t *testing.T) {
	server := newServer(t, envelopeBackend)

	body, _ := json.Marshal(map[string]any{
		"model":  "@cf/black-forest-labs/flux-1-schnell",
		"prompt": "a cat",
		"n":      2,
	})

	resp, err := http.Post(server.URL+"/v1/images/generations", "application/json", bytes.NewReader(body))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		ID          string   `json:"id"`
		Images      []string `json:"images"`
		ErrorReason string   `json:"error_reason"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	require.NotEmpty(t, result.ID)
	require.Len(t, result.Images, 2)
	require.Empty(t, result.ErrorReason)
	require.True(t, strings.HasPrefix(result.Images[0], "data:image/png;base64,"))
}

func TestGenerationsConfigError(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	body, _ := json.Marshal(map[string]any{
		"model":  "@cf/black-forest-labs/flux-1-schnell",
		"prompt": "a cat",
	})

	resp, err := http.Post(server.URL+"/v1/images/generations", "application/json", bytes.NewReader(body))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Images      []string `json:"images"`
		ErrorReason string   `json:"error_reason"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	require.Empty(t, result.Images)
	require.Equal(t, "CONFIG_ERROR", result.ErrorReason)
}

func TestGenerationsBackendError(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	body, _ := json.Marshal(map[string]any{
		"model":  "@cf/black-forest-labs/flux-1-schnell",
		"prompt": "a cat",
	})

	resp, err := http.Post(server.URL+"/v1/images/generations", "application/json", bytes.NewReader(body))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestGenerationsUnsupportedOperation(t *testing.T) {
	server := newServer(t, envelopeBackend)

	body, _ := json.Marshal(map[string]any{
		"model":  "@cf/runwayml/stable-diffusion-v1-5-img2img",
		"prompt": "a cat",
	})

	resp, err := http.Post(server.URL+"/v1/images/generations", "application/json", bytes.NewReader(body))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerationsUnknownProvider(t *testing.T) {
	server := newServer(t, envelopeBackend)

	body, _ := json.Marshal(map[string]any{
		"provider": "nope",
		"model":    "@cf/black-forest-labs/flux-1-schnell",
		"prompt":   "a cat",
	})

	resp, err := http.Post(server.URL+"/v1/images/generations", "application/json", bytes.NewReader(body))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestModels(t *testing.T) {
	server := newServer(t, envelopeBackend)

	resp, err := http.Get(server.URL + "/v1/models")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Models []struct {
			ID       string `json:"id"`
			Provider string `json:"provider"`
			Ability  string `json:"ability"`
		} `json:"data"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.NotEmpty(t, result.Models)

	for _, m := range result.Models {
		require.Equal(t, "workers-ai", m.Provider)
		require.NotEmpty(t, m.Ability)
	}
}

func TestProviders(t *testing.T) {
	server := newServer(t, envelopeBackend)

	resp, err := http.Get(server.URL + "/v1/providers")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Providers []struct {
			ID     string `json:"id"`
			Schema []struct {
				Key      string `json:"key"`
				Kind     string `json:"kind"`
				Required bool   `json:"required"`
			} `json:"schema"`
		} `json:"data"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Providers, 1)
	require.Equal(t, "workers-ai", result.Providers[0].ID)
	require.NotEmpty(t, result.Providers[0].Schema)
}

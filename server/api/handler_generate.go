package api

import (
	"encoding/json"
	"net/http"

	"github.com/easel-ai/easel/pkg/provider"
)

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.Prompt == "" {
		writeError(w, http.StatusBadRequest, nil)
		return
	}

	p, err := h.Provider(req.Provider)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := p.Generate(r.Context(), provider.Request{
		Model:  req.Model,
		Prompt: req.Prompt,

		AspectRatio: req.AspectRatio,

		Images: req.Images,

		Count: req.N,
	}, h.ProviderSettings(req.Provider))

	if err != nil {
		switch {
		case provider.IsUnsupportedOperationError(err):
			writeError(w, http.StatusBadRequest, err)

		case provider.IsBackendError(err):
			writeError(w, http.StatusBadGateway, err)

		default:
			writeError(w, http.StatusInternalServerError, err)
		}

		return
	}

	images := result.Images

	if images == nil {
		images = []string{}
	}

	writeJson(w, GenerateResponse{
		ID: result.ID,

		Images: images,

		ErrorReason: string(result.Reason),
	})
}

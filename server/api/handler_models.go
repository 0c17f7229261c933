package api

import (
	"net/http"
)

func (h *Handler) handleModels(w http.ResponseWriter, r *http.Request) {
	result := ModelList{
		Models: []Model{},
	}

	for _, p := range h.Providers() {
		for _, m := range p.Models() {
			result.Models = append(result.Models, Model{
				ID: m.ID,

				Name:     m.Name,
				Provider: p.ID(),

				Ability: string(m.Ability),
				Enabled: m.Enabled,

				AspectRatios: m.AspectRatios,
			})
		}
	}

	writeJson(w, result)
}

func (h *Handler) handleProviders(w http.ResponseWriter, r *http.Request) {
	result := ProviderList{
		Providers: []Provider{},
	}

	for _, p := range h.Providers() {
		entry := Provider{
			ID: p.ID(),

			Name:    p.Name(),
			Enabled: p.Enabled(),
		}

		for _, f := range p.Schema() {
			entry.Schema = append(entry.Schema, Field{
				Key:  f.Key,
				Kind: string(f.Kind),

				Required: f.Required,
				Default:  f.Default,
			})
		}

		result.Providers = append(result.Providers, entry)
	}

	writeJson(w, result)
}

package provider

import (
	"context"
)

// Plugin is the contract every image backend commits to. Implementations
// are created once at startup and held read-only in the registry, so all
// methods must be safe for concurrent use.
type Plugin interface {
	ID() string
	Name() string
	Enabled() bool

	Models() []Model

	Schema() []Field
	ParseSettings(raw map[string]any) (Settings, error)

	Generate(ctx context.Context, req Request, raw map[string]any) (*Result, error)
}

// FindModel looks up a model by id in a plugin's catalog.
func FindModel(p Plugin, id string) (Model, bool) {
	for _, m := range p.Models() {
		if m.ID == id {
			return m, true
		}
	}

	return Model{}, false
}

package api

type GenerateRequest struct {
	Provider string `json:"provider,omitempty"`

	Model  string `json:"model"`
	Prompt string `json:"prompt"`

	AspectRatio string `json:"aspect_ratio,omitempty"`

	Images []string `json:"images,omitempty"`

	N int `json:"n,omitempty"`
}

type GenerateResponse struct {
	ID string `json:"id"`

	Images []string `json:"images"`

	ErrorReason string `json:"error_reason,omitempty"`
}

type Model struct {
	ID string `json:"id"`

	Name     string `json:"name,omitempty"`
	Provider string `json:"provider,omitempty"`

	Ability string `json:"ability,omitempty"`
	Enabled bool   `json:"enabled,omitempty"`

	AspectRatios []string `json:"aspect_ratios,omitempty"`
}

type ModelList struct {
	Models []Model `json:"data"`
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

type ProviderList struct {
	Providers []Provider `json:"data"`
}

package config

import (
	"errors"
	"sort"
	"strings"

	"github.com/easel-ai/easel/pkg/limiter"
	"github.com/easel-ai/easel/pkg/otel"
	"github.com/easel-ai/easel/pkg/provider"
	"github.com/easel-ai/easel/pkg/provider/bedrock"
	"github.com/easel-ai/easel/pkg/provider/gemini"
	"github.com/easel-ai/easel/pkg/provider/openai"
	"github.com/easel-ai/easel/pkg/provider/replicate/flux"
	"github.com/easel-ai/easel/pkg/provider/workersai"
)

type providerConfig struct {
	Type string `yaml:"type"`

	URL string `yaml:"url"`

	Settings map[string]any `yaml:"settings"`

	Limit *int `yaml:"limit"`
}

type providerEntry struct {
	plugin provider.Plugin

	settings map[string]any
}

func (cfg *Config) RegisterProvider(id string, p provider.Plugin, settings map[string]any) {
	if cfg.providers == nil {
		cfg.providers = make(map[string]providerEntry)
	}

	entry := providerEntry{
		plugin: p,

		settings: settings,
	}

	if _, ok := cfg.providers[""]; !ok {
		cfg.providers[""] = entry
	}

	cfg.providers[id] = entry
}

func (cfg *Config) Provider(id string) (provider.Plugin, error) {
	if cfg.providers != nil {
		if e, ok := cfg.providers[id]; ok {
			return e.plugin, nil
		}
	}

	return nil, errors.New("provider not found: " + id)
}

// ProviderSettings returns the raw settings a provider was registered with.
// They are handed to Generate unparsed so the plugin validates them against
// its active schema.
func (cfg *Config) ProviderSettings(id string) map[string]any {
	if cfg.providers != nil {
		if e, ok := cfg.providers[id]; ok {
			return e.settings
		}
	}

	return nil
}

func (cfg *Config) Providers() []provider.Plugin {
	var ids []string

	for id := range cfg.providers {
		if id == "" {
			continue
		}

		ids = append(ids, id)
	}

	sort.Strings(ids)

	var providers []provider.Plugin

	for _, id := range ids {
		providers = append(providers, cfg.providers[id].plugin)
	}

	return providers
}

func (cfg *Config) registerProviders(file *configFile) error {
	for _, p := range file.Providers {
		plugin, err := createProvider(p)

		if err != nil {
			return err
		}

		wrapped := limiter.NewPlugin(createLimiter(p.Limit), otel.NewPlugin(plugin))

		cfg.RegisterProvider(plugin.ID(), wrapped, p.Settings)
	}

	return nil
}

func createProvider(cfg providerConfig) (provider.Plugin, error) {
	switch strings.ToLower(cfg.Type) {
	case "workersai", "workers-ai", "cloudflare":
		return workersaiProvider(cfg)

	case "openai":
		return openaiProvider(cfg)

	case "gemini", "google":
		return geminiProvider(cfg)

	case "replicate":
		return replicateProvider(cfg)

	case "bedrock", "aws":
		return bedrockProvider(cfg)

	default:
		return nil, errors.New("invalid provider type: " + cfg.Type)
	}
}

func workersaiProvider(cfg providerConfig) (provider.Plugin, error) {
	var options []workersai.Option

	if cfg.URL != "" {
		options = append(options, workersai.WithURL(cfg.URL))
	}

	return workersai.New(options...)
}

func openaiProvider(cfg providerConfig) (provider.Plugin, error) {
	var options []openai.Option

	return openai.New(options...)
}

func geminiProvider(cfg providerConfig) (provider.Plugin, error) {
	var options []gemini.Option

	return gemini.New(options...)
}

func replicateProvider(cfg providerConfig) (provider.Plugin, error) {
	return flux.New()
}

func bedrockProvider(cfg providerConfig) (provider.Plugin, error) {
	var options []bedrock.Option

	return bedrock.New(options...)
}

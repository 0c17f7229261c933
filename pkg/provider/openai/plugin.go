package openai

import (
	"context"
	"slices"

	"github.com/easel-ai/easel/pkg/datauri"
	"github.com/easel-ai/easel/pkg/provider"

	"github.com/openai/openai-go/v3"
)

var _ provider.Plugin = (*Plugin)(nil)

type Plugin struct {
	*Config
}

var schema = []provider.Field{
	{Key: "api_key", Kind: provider.FieldSecret, Required: true},
	{Key: "base_url", Kind: provider.FieldText},
}

var Models = []provider.Model{
	{
		ID: "gpt-image-1",

		Name:    "GPT Image 1",
		Ability: provider.AbilityTextToImage,

		Enabled: true,

		AspectRatios: []string{"1:1", "3:2", "2:3"},
	},
	{
		ID: "dall-e-3",

		Name:    "DALL-E 3",
		Ability: provider.AbilityTextToImage,

		AspectRatios: []string{"1:1"},
	},
}

func New(options ...Option) (*Plugin, error) {
	cfg := &Config{}

	for _, option := range options {
		option(cfg)
	}

	return &Plugin{
		Config: cfg,
	}, nil
}

func (p *Plugin) ID() string {
	return "openai"
}

func (p *Plugin) Name() string {
	return "OpenAI"
}

func (p *Plugin) Enabled() bool {
	return true
}

func (p *Plugin) Models() []provider.Model {
	return Models
}

func (p *Plugin) Schema() []provider.Field {
	return schema
}

func (p *Plugin) ParseSettings(raw map[string]any) (provider.Settings, error) {
	return provider.ParseSettings(schema, raw)
}

func (p *Plugin) Generate(ctx context.Context, req provider.Request, raw map[string]any) (*provider.Result, error) {
	return provider.Generate(ctx, p, req, raw, p.render)
}

func (p *Plugin) render(ctx context.Context, req provider.Request, settings provider.Settings) ([]string, error) {
	model, ok := provider.FindModel(p, req.Model)

	if !ok {
		return nil, provider.NewUnsupportedOperationError("unknown model: %s", req.Model)
	}

	if _, err := provider.ChooseAbility(req, model.Ability); err != nil {
		return nil, err
	}

	params := openai.ImageGenerateParams{
		Model:  req.Model,
		Prompt: req.Prompt,
	}

	if req.Model != "gpt-image-1" {
		params.ResponseFormat = openai.ImageGenerateParamsResponseFormatB64JSON
	}

	if size, ok := convertSize(req.AspectRatio, model); ok {
		params.Size = size
	}

	images := openai.NewImageService(p.Options(settings)...)

	image, err := images.Generate(ctx, params)

	if err != nil {
		return nil, convertError(err)
	}

	var result []string

	for _, data := range image.Data {
		payload, err := p.getData(ctx, data)

		if err != nil {
			return nil, err
		}

		result = append(result, datauri.Encode("image/png", payload))
	}

	return result, nil
}

func convertSize(ratio string, model provider.Model) (openai.ImageGenerateParamsSize, bool) {
	if ratio == "" || !slices.Contains(model.AspectRatios, ratio) {
		return "", false
	}

	switch ratio {
	case "1:1":
		return openai.ImageGenerateParamsSize1024x1024, true

	case "3:2":
		return openai.ImageGenerateParamsSize1536x1024, true

	case "2:3":
		return openai.ImageGenerateParamsSize1024x1536, true
	}

	return "", false
}

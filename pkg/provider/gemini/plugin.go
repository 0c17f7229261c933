package gemini

import (
	"context"
	"errors"

	"github.com/easel-ai/easel/pkg/datauri"
	"github.com/easel-ai/easel/pkg/provider"

	"google.golang.org/genai"
)

var _ provider.Plugin = (*Plugin)(nil)

type Plugin struct {
	*Config
}

var schema = []provider.Field{
	{Key: "api_key", Kind: provider.FieldSecret, Required: true},
}

var Models = []provider.Model{
	{
		ID: "gemini-2.5-flash-image",

		Name:    "Gemini 2.5 Flash Image",
		Ability: provider.AbilityTextToImage,

		Enabled: true,
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
	return "gemini"
}

func (p *Plugin) Name() string {
	return "Google Gemini"
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

	client, err := p.newClient(ctx, settings)

	if err != nil {
		return nil, err
	}

	parts := []*genai.Part{
		genai.NewPartFromText(req.Prompt),
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := client.Models.GenerateContent(ctx, req.Model, contents, nil)

	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("no image candidates returned")
	}

	var images []string

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData == nil {
			continue
		}

		images = append(images, datauri.Encode(part.InlineData.MIMEType, part.InlineData.Data))
	}

	if len(images) == 0 {
		return nil, errors.New("no image data returned")
	}

	return images, nil
}

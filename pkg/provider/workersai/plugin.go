package workersai

import (
	"context"
	"encoding/base64"
	"errors"
	"io"

	"github.com/easel-ai/easel/pkg/datauri"
	"github.com/easel-ai/easel/pkg/provider"
)

var _ provider.Plugin = (*Plugin)(nil)

type Plugin struct {
	*Config

	client *Client
}

var builtinSchema = []provider.Field{
	{Key: "builtin", Kind: provider.FieldBoolean, Default: true},
	{Key: "account_id", Kind: provider.FieldSecret},
	{Key: "api_key", Kind: provider.FieldSecret},
}

var externalSchema = []provider.Field{
	{Key: "account_id", Kind: provider.FieldSecret, Required: true},
	{Key: "api_key", Kind: provider.FieldSecret, Required: true},
}

func New(options ...Option) (*Plugin, error) {
	cfg := &Config{}

	for _, option := range options {
		option(cfg)
	}

	return &Plugin{
		Config: cfg,

		client: NewClient(cfg.url, cfg.client),
	}, nil
}

func (p *Plugin) ID() string {
	return "workers-ai"
}

func (p *Plugin) Name() string {
	return "Workers AI"
}

func (p *Plugin) Enabled() bool {
	return true
}

func (p *Plugin) Models() []provider.Model {
	return Models
}

// Schema depends only on the capabilities fixed at construction. A runtime
// with the native binding may fall back to ambient credentials, so account
// and key become optional there.
func (p *Plugin) Schema() []provider.Field {
	if p.capabilities.NativeBinding {
		return builtinSchema
	}

	return externalSchema
}

func (p *Plugin) ParseSettings(raw map[string]any) (provider.Settings, error) {
	return provider.ParseSettings(p.Schema(), raw)
}

func (p *Plugin) Generate(ctx context.Context, req provider.Request, raw map[string]any) (*provider.Result, error) {
	return provider.Generate(ctx, p, req, raw, p.render)
}

func (p *Plugin) render(ctx context.Context, req provider.Request, settings provider.Settings) ([]string, error) {
	model, ok := provider.FindModel(p, req.Model)

	if !ok {
		return nil, provider.NewUnsupportedOperationError("unknown model: %s", req.Model)
	}

	ability, err := provider.ChooseAbility(req, model.Ability)

	if err != nil {
		return nil, err
	}

	params, err := buildParams(req, model, ability)

	if err != nil {
		return nil, err
	}

	if p.useBinding(settings) {
		output, err := p.binding.Run(ctx, req.Model, params)

		if err != nil {
			return nil, err
		}

		uri, err := normalizeBinding(output)

		if err != nil {
			return nil, err
		}

		return []string{uri}, nil
	}

	accountID := settings.String("account_id")
	apiKey := settings.String("api_key")

	if accountID == "" || apiKey == "" {
		return nil, provider.NewConfigurationError("workers ai requires account_id and api_key without the native binding")
	}

	output, err := p.client.Run(ctx, accountID, apiKey, req.Model, params)

	if err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(output.Image)

	if err != nil {
		return nil, err
	}

	return []string{datauri.Encode(output.MediaType, data)}, nil
}

// useBinding gates the native path: the runtime must be capable, the handle
// must actually be present and the deployment must have opted in.
func (p *Plugin) useBinding(settings provider.Settings) bool {
	return p.capabilities.NativeBinding && p.binding != nil && settings.Bool("builtin")
}

func normalizeBinding(output *BindingOutput) (string, error) {
	if output == nil {
		return "", errors.New("empty binding output")
	}

	if output.Reader != nil {
		data, err := io.ReadAll(output.Reader)

		if err != nil {
			return "", err
		}

		return datauri.Encode("image/png", data), nil
	}

	if output.Image != "" {
		data, err := base64.StdEncoding.DecodeString(output.Image)

		if err != nil {
			return "", err
		}

		return datauri.Encode("image/png", data), nil
	}

	return "", errors.New("empty binding output")
}

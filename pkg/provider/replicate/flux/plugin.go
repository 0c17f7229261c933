package flux

import (
	"context"
	"errors"
	"io"
	"slices"

	"github.com/easel-ai/easel/pkg/datauri"
	"github.com/easel-ai/easel/pkg/provider"
	"github.com/easel-ai/easel/pkg/provider/replicate"

	"github.com/google/uuid"
)

var _ provider.Plugin = (*Plugin)(nil)

type Plugin struct{}

const (
	FluxSchnell string = "black-forest-labs/flux-schnell"
	FluxDev     string = "black-forest-labs/flux-dev"

	FluxKontextPro string = "black-forest-labs/flux-kontext-pro"
)

var schema = []provider.Field{
	{Key: "api_token", Kind: provider.FieldSecret, Required: true},
}

var Models = []provider.Model{
	{
		ID: FluxSchnell,

		Name:    "FLUX.1 [schnell]",
		Ability: provider.AbilityTextToImage,

		Enabled: true,

		AspectRatios: provider.AspectRatios(),
	},
	{
		ID: FluxDev,

		Name:    "FLUX.1 [dev]",
		Ability: provider.AbilityTextToImage,

		AspectRatios: provider.AspectRatios(),
	},
	{
		ID: FluxKontextPro,

		Name:    "FLUX.1 Kontext [pro]",
		Ability: provider.AbilityImageToImage,
	},
}

func New() (*Plugin, error) {
	return &Plugin{}, nil
}

func (p *Plugin) ID() string {
	return "replicate"
}

func (p *Plugin) Name() string {
	return "Replicate"
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

	ability, err := provider.ChooseAbility(req, model.Ability)

	if err != nil {
		return nil, err
	}

	client, err := replicate.New(settings.String("api_token"))

	if err != nil {
		return nil, err
	}

	input := replicate.PredictionInput{
		"prompt": req.Prompt,

		"output_format": "png",
	}

	if req.AspectRatio != "" && slices.Contains(model.AspectRatios, req.AspectRatio) {
		input["aspect_ratio"] = req.AspectRatio
	}

	if ability == provider.AbilityImageToImage {
		mediaType, data, err := datauri.Decode(req.Images[0])

		if err != nil {
			return nil, err
		}

		file, err := client.UploadFile(ctx, uuid.NewString()+".png", mediaType, data)

		if err != nil {
			return nil, err
		}

		defer func() {
			client.DeleteFile(context.Background(), file.ID)
		}()

		input["input_image"] = file.URLs["get"]
	}

	output, err := client.Run(ctx, req.Model, input)

	if err != nil {
		return nil, err
	}

	return convertOutput(output)
}

func convertOutput(output replicate.PredictionOutput) ([]string, error) {
	file, ok := output.(*replicate.FileOutput)

	if !ok {
		return nil, errors.New("unsupported output")
	}

	data, err := io.ReadAll(file)

	if err != nil {
		return nil, err
	}

	return []string{datauri.Encode("image/png", data)}, nil
}

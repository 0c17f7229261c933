package bedrock

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"slices"

	"github.com/easel-ai/easel/pkg/datauri"
	"github.com/easel-ai/easel/pkg/provider"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"
)

var _ provider.Plugin = (*Plugin)(nil)

type Plugin struct {
	*Config
}

// credentials come from the AWS default chain, the schema only carries the
// region override
var schema = []provider.Field{
	{Key: "region", Kind: provider.FieldText},
}

var Models = []provider.Model{
	{
		ID: "amazon.nova-canvas-v1:0",

		Name:    "Amazon Nova Canvas",
		Ability: provider.AbilityTextToImage,

		Enabled: true,

		AspectRatios: provider.AspectRatios(),
	},
	{
		ID: "amazon.titan-image-generator-v2:0",

		Name:    "Amazon Titan Image Generator v2",
		Ability: provider.AbilityTextToImage,

		AspectRatios: []string{"1:1", "16:9", "9:16"},
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
	return "bedrock"
}

func (p *Plugin) Name() string {
	return "AWS Bedrock"
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

type textToImageParams struct {
	Text string `json:"text"`
}

type imageGenerationConfig struct {
	NumberOfImages int `json:"numberOfImages"`

	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

type invokeInput struct {
	TaskType string `json:"taskType"`

	TextToImageParams textToImageParams `json:"textToImageParams"`

	ImageGenerationConfig imageGenerationConfig `json:"imageGenerationConfig"`
}

type invokeOutput struct {
	Images []string `json:"images"`
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

	input := invokeInput{
		TaskType: "TEXT_IMAGE",

		TextToImageParams: textToImageParams{
			Text: req.Prompt,
		},

		ImageGenerationConfig: imageGenerationConfig{
			NumberOfImages: 1,
		},
	}

	if req.AspectRatio != "" && slices.Contains(model.AspectRatios, req.AspectRatio) {
		if size, ok := provider.Dimensions(req.AspectRatio); ok {
			input.ImageGenerationConfig.Width = size.Width
			input.ImageGenerationConfig.Height = size.Height
		}
	}

	body, err := json.Marshal(input)

	if err != nil {
		return nil, err
	}

	resp, err := client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId: aws.String(req.Model),

		ContentType: aws.String("application/json"),

		Body: body,
	})

	if err != nil {
		return nil, convertError(err)
	}

	var output invokeOutput

	if err := json.Unmarshal(resp.Body, &output); err != nil {
		return nil, err
	}

	if len(output.Images) == 0 {
		return nil, errors.New("no image data returned")
	}

	var images []string

	for _, image := range output.Images {
		data, err := base64.StdEncoding.DecodeString(image)

		if err != nil {
			return nil, err
		}

		images = append(images, datauri.Encode("image/png", data))
	}

	return images, nil
}

func convertError(err error) error {
	var apierr smithy.APIError

	if errors.As(err, &apierr) {
		switch apierr.ErrorCode() {
		case "AccessDeniedException", "ResourceNotFoundException", "UnrecognizedClientException", "ExpiredTokenException":
			return provider.NewConfigurationError("bedrock rejected the request: %s", apierr.ErrorMessage())
		}

		return &provider.BackendError{
			StatusText: apierr.ErrorCode(),

			Body: apierr.ErrorMessage(),
		}
	}

	return err
}

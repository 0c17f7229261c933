package workersai

import (
	"encoding/base64"
	"slices"

	"github.com/easel-ai/easel/pkg/datauri"
	"github.com/easel-ai/easel/pkg/provider"
)

type textToImageParams struct {
	Prompt string `json:"prompt"`

	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

type imageToImageParams struct {
	Prompt string `json:"prompt"`

	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	ImageB64 string `json:"image_b64"`
}

// buildParams maps a request onto the wire shape for the resolved ability.
// Width and height are only set when the model declares the requested ratio;
// an unsupported or unspecified ratio leaves sizing to the backend.
func buildParams(req provider.Request, model provider.Model, ability provider.Ability) (any, error) {
	var width, height int

	if req.AspectRatio != "" && slices.Contains(model.AspectRatios, req.AspectRatio) {
		if size, ok := provider.Dimensions(req.AspectRatio); ok {
			width = size.Width
			height = size.Height
		}
	}

	switch ability {
	case provider.AbilityImageToImage:
		// only the first reference image is consumed
		_, data, err := datauri.Decode(req.Images[0])

		if err != nil {
			return nil, err
		}

		return imageToImageParams{
			Prompt: req.Prompt,

			Width:  width,
			Height: height,

			ImageB64: base64.StdEncoding.EncodeToString(data),
		}, nil

	default:
		return textToImageParams{
			Prompt: req.Prompt,

			Width:  width,
			Height: height,
		}, nil
	}
}

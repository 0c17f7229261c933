package workersai

import (
	"encoding/base64"
	"testing"

	"github.com/easel-ai/easel/pkg/datauri"
	"github.com/easel-ai/easel/pkg/provider"
)

func TestBuildParamsTextToImage(t *testing.T) {
	model := provider.Model{ID: "m", Ability: provider.AbilityTextToImage, AspectRatios: provider.AspectRatios()}

	req := provider.Request{Model: "m", Prompt: "a cat", AspectRatio: "16:9"}

	params, err := buildParams(req, model, provider.AbilityTextToImage)

	if err != nil {
		t.Fatal(err)
	}

	p, ok := params.(textToImageParams)

	if !ok {
		t.Fatalf("unexpected params type %T", params)
	}

	if p.Prompt != "a cat" {
		t.Errorf("unexpected prompt %q", p.Prompt)
	}

	if p.Width != 1344 || p.Height != 768 {
		t.Errorf("unexpected size %dx%d", p.Width, p.Height)
	}
}

func TestBuildParamsUnsupportedRatioOmitsSize(t *testing.T) {
	// model declares no ratios at all
	model := provider.Model{ID: "m", Ability: provider.AbilityTextToImage}

	req := provider.Request{Model: "m", Prompt: "a cat", AspectRatio: "16:9"}

	params, err := buildParams(req, model, provider.AbilityTextToImage)

	if err != nil {
		t.Fatal(err)
	}

	p := params.(textToImageParams)

	if p.Width != 0 || p.Height != 0 {
		t.Errorf("expected no size, got %dx%d", p.Width, p.Height)
	}
}

func TestBuildParamsUnspecifiedRatioOmitsSize(t *testing.T) {
	model := provider.Model{ID: "m", Ability: provider.AbilityTextToImage, AspectRatios: provider.AspectRatios()}

	req := provider.Request{Model: "m", Prompt: "a cat"}

	params, err := buildParams(req, model, provider.AbilityTextToImage)

	if err != nil {
		t.Fatal(err)
	}

	p := params.(textToImageParams)

	if p.Width != 0 || p.Height != 0 {
		t.Errorf("expected no size, got %dx%d", p.Width, p.Height)
	}
}

func TestBuildParamsImageToImage(t *testing.T) {
	model := provider.Model{ID: "m", Ability: provider.AbilityImageToImage}

	payload := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}

	req := provider.Request{
		Model:  "m",
		Prompt: "a cat",

		Images: []string{
			datauri.Encode("image/jpeg", payload),
			datauri.Encode("image/png", []byte("unused")),
		},
	}

	params, err := buildParams(req, model, provider.AbilityImageToImage)

	if err != nil {
		t.Fatal(err)
	}

	p, ok := params.(imageToImageParams)

	if !ok {
		t.Fatalf("unexpected params type %T", params)
	}

	// only the first reference image is consumed, stripped of its scheme
	want := base64.StdEncoding.EncodeToString(payload)

	if p.ImageB64 != want {
		t.Errorf("got %q, want %q", p.ImageB64, want)
	}
}

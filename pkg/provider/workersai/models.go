package workersai

import (
	"github.com/easel-ai/easel/pkg/provider"
)

var Models = []provider.Model{
	{
		ID: "@cf/black-forest-labs/flux-1-schnell",

		Name:    "FLUX.1 [schnell]",
		Ability: provider.AbilityTextToImage,

		Enabled: true,
	},
	{
		ID: "@cf/stabilityai/stable-diffusion-xl-base-1.0",

		Name:    "Stable Diffusion XL",
		Ability: provider.AbilityTextToImage,

		Enabled: true,

		AspectRatios: provider.AspectRatios(),
	},
	{
		ID: "@cf/bytedance/stable-diffusion-xl-lightning",

		Name:    "SDXL Lightning",
		Ability: provider.AbilityTextToImage,

		AspectRatios: provider.AspectRatios(),
	},
	{
		ID: "@cf/lykon/dreamshaper-8-lcm",

		Name:    "DreamShaper 8 LCM",
		Ability: provider.AbilityTextToImage,

		AspectRatios: provider.AspectRatios(),
	},
	{
		ID: "@cf/runwayml/stable-diffusion-v1-5-img2img",

		Name:    "Stable Diffusion v1.5 Img2Img",
		Ability: provider.AbilityImageToImage,
	},
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/easel-ai/easel/pkg/client"
	"github.com/easel-ai/easel/pkg/datauri"

	"github.com/google/uuid"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	tokenFlag := flag.String("token", "", "server token")

	providerFlag := flag.String("provider", "", "provider id")
	modelFlag := flag.String("model", "", "model id")

	ratioFlag := flag.String("ratio", "", "aspect ratio")
	imageFlag := flag.String("image", "", "reference image file")
	countFlag := flag.Int("n", 1, "image count")

	flag.Parse()

	prompt := flag.Arg(0)

	if prompt == "" {
		fmt.Fprintln(os.Stderr, "usage: client [flags] <prompt>")
		os.Exit(2)
	}

	ctx := context.Background()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	input := client.GenerationRequest{
		Provider: *providerFlag,

		Model:  *modelFlag,
		Prompt: prompt,

		AspectRatio: *ratioFlag,

		N: *countFlag,
	}

	if *imageFlag != "" {
		data, err := os.ReadFile(*imageFlag)

		if err != nil {
			panic(err)
		}

		input.Images = []string{datauri.Encode("image/png", data)}
	}

	result, err := c.Generations.New(ctx, input)

	if err != nil {
		panic(err)
	}

	if result.ErrorReason != "" {
		fmt.Fprintln(os.Stderr, "generation failed:", result.ErrorReason)
		os.Exit(1)
	}

	for _, image := range result.Images {
		_, data, err := datauri.Decode(image)

		if err != nil {
			panic(err)
		}

		name := uuid.NewString() + ".png"

		if err := os.WriteFile(name, data, 0o644); err != nil {
			panic(err)
		}

		fmt.Println(name)
	}
}

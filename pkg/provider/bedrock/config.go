package bedrock

import (
	"context"

	"github.com/easel-ai/easel/pkg/provider"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

type Config struct {
}

type Option func(*Config)

func (c *Config) newClient(ctx context.Context, settings provider.Settings) (*bedrockruntime.Client, error) {
	var options []func(*config.LoadOptions) error

	if region := settings.String("region"); region != "" {
		options = append(options, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, options...)

	if err != nil {
		return nil, err
	}

	return bedrockruntime.NewFromConfig(cfg), nil
}

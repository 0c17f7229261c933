package replicate

import (
	"context"

	"github.com/replicate/replicate-go"
)

type Client struct {
	client *replicate.Client
}

type PredictionInput = replicate.PredictionInput
type PredictionOutput = replicate.PredictionOutput

type File = replicate.File
type FileOutput = replicate.FileOutput

func New(token string) (*Client, error) {
	client, err := replicate.NewClient(replicate.WithToken(token))

	if err != nil {
		return nil, err
	}

	return &Client{
		client: client,
	}, nil
}

func (c *Client) Run(ctx context.Context, model string, input PredictionInput) (PredictionOutput, error) {
	return c.client.RunWithOptions(ctx, model, input, nil, replicate.WithBlockUntilDone(), replicate.WithFileOutput())
}

func (c *Client) UploadFile(ctx context.Context, name, contentType string, data []byte) (*File, error) {
	return c.client.CreateFileFromBytes(ctx, data, &replicate.CreateFileOptions{
		Filename:    name,
		ContentType: contentType,
	})
}

func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	return c.client.DeleteFile(ctx, fileID)
}

package workersai

import (
	"context"
	"io"
)

// Binding is the host runtime's in-process inference handle. Inside the
// capable edge runtime the gateway can run models without an outbound
// call; everywhere else the REST client is used instead.
type Binding interface {
	Run(ctx context.Context, model string, params any) (*BindingOutput, error)
}

// BindingOutput is what the handle returns: either a raw image stream or
// a payload with the image already base64-encoded. Exactly one is set.
type BindingOutput struct {
	Reader io.Reader
	Image  string
}

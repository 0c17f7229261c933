package limiter

import (
	"context"

	"github.com/easel-ai/easel/pkg/provider"

	"golang.org/x/time/rate"
)

type Limiter interface {
	limiterSetup()
}

type Plugin interface {
	Limiter
	provider.Plugin
}

type limitedPlugin struct {
	limiter *rate.Limiter
	plugin  provider.Plugin
}

// NewPlugin throttles outbound generation calls of a plugin. A nil limiter
// passes calls through untouched.
func NewPlugin(l *rate.Limiter, p provider.Plugin) Plugin {
	return &limitedPlugin{
		limiter: l,
		plugin:  p,
	}
}

func (p *limitedPlugin) limiterSetup() {
}

func (p *limitedPlugin) ID() string {
	return p.plugin.ID()
}

func (p *limitedPlugin) Name() string {
	return p.plugin.Name()
}

func (p *limitedPlugin) Enabled() bool {
	return p.plugin.Enabled()
}

func (p *limitedPlugin) Models() []provider.Model {
	return p.plugin.Models()
}

func (p *limitedPlugin) Schema() []provider.Field {
	return p.plugin.Schema()
}

func (p *limitedPlugin) ParseSettings(raw map[string]any) (provider.Settings, error) {
	return p.plugin.ParseSettings(raw)
}

func (p *limitedPlugin) Generate(ctx context.Context, req provider.Request, raw map[string]any) (*provider.Result, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.plugin.Generate(ctx, req, raw)
}

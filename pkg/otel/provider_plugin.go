package otel

import (
	"context"
	"time"

	"github.com/easel-ai/easel/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/semconv/v1.38.0/genaiconv"
)

type Plugin interface {
	Observable
	provider.Plugin
}

type observablePlugin struct {
	plugin provider.Plugin

	operationDurationMetric genaiconv.ClientOperationDuration
}

func NewPlugin(p provider.Plugin) Plugin {
	meter := otel.Meter(instrumentationName)

	operationDurationMetric, _ := genaiconv.NewClientOperationDuration(meter)

	return &observablePlugin{
		plugin: p,

		operationDurationMetric: operationDurationMetric,
	}
}

func (p *observablePlugin) otelSetup() {
}

func (p *observablePlugin) ID() string {
	return p.plugin.ID()
}

func (p *observablePlugin) Name() string {
	return p.plugin.Name()
}

func (p *observablePlugin) Enabled() bool {
	return p.plugin.Enabled()
}

func (p *observablePlugin) Models() []provider.Model {
	return p.plugin.Models()
}

func (p *observablePlugin) Schema() []provider.Field {
	return p.plugin.Schema()
}

func (p *observablePlugin) ParseSettings(raw map[string]any) (provider.Settings, error) {
	return p.plugin.ParseSettings(raw)
}

func (p *observablePlugin) Generate(ctx context.Context, req provider.Request, raw map[string]any) (*provider.Result, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "generate "+req.Model)
	defer span.End()

	timestamp := time.Now()

	result, err := p.plugin.Generate(ctx, req, raw)

	if result != nil {
		duration := time.Since(timestamp).Seconds()

		p.operationDurationMetric.Record(ctx, duration,
			genaiconv.OperationNameGenerateContent,
			genaiconv.ProviderNameAttr(p.plugin.ID()),
			p.operationDurationMetric.AttrRequestModel(req.Model),
			p.operationDurationMetric.AttrResponseModel(req.Model),
		)
	}

	return result, err
}

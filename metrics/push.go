package metrics

import (
	"context"
	"fmt"
	"time"

	mexporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/metric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// Pusher periodically exports process gauges and counters to Google
// Cloud Monitoring, independent of the Prometheus pull surface served
// by Registry.Handler.
type Pusher struct {
	provider *sdkmetric.MeterProvider
	meter    metric.Meter
}

// NewPusher constructs a Pusher that exports metrics for projectID every
// interval, tagging the exported resource with res.
func NewPusher(ctx context.Context, projectID string, interval time.Duration, res *resource.Resource) (*Pusher, error) {
	exporter, err := mexporter.New(mexporter.WithProjectID(projectID))
	if err != nil {
		return nil, fmt.Errorf("metrics: creating cloud monitoring exporter: %w", err)
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)

	return &Pusher{
		provider: provider,
		meter:    provider.Meter("ctlog"),
	}, nil
}

// Int64Counter returns an OTel counter instrument registered against this
// Pusher's meter, for use alongside the Registry's Prometheus counters.
func (p *Pusher) Int64Counter(name, description string) (metric.Int64Counter, error) {
	return p.meter.Int64Counter(name, metric.WithDescription(description))
}

// Float64Gauge returns an OTel gauge-backed observable registered against
// this Pusher's meter.
func (p *Pusher) Float64Gauge(name, description string) (metric.Float64ObservableGauge, error) {
	return p.meter.Float64ObservableGauge(name, metric.WithDescription(description))
}

// Shutdown flushes any pending data and stops the periodic push.
func (p *Pusher) Shutdown(ctx context.Context) error {
	return p.provider.Shutdown(ctx)
}

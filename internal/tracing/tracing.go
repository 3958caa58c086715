package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jaegerzap "github.com/uber/jaeger-client-go/log/zap"
	"go.uber.org/zap"
	"max.ks1230/finances-ledger/internal/logger"
)

type config interface {
	ServiceName() string
	AgentAddr() string
	Disabled() bool
	LogSpans() bool
}

// Init installs a Jaeger tracer as the global opentracing tracer. The
// returned closer flushes buffered spans.
func Init(config config) (io.Closer, error) {
	cfg := jaegercfg.Configuration{
		ServiceName: config.ServiceName(),
		Disabled:    config.Disabled(),
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           config.LogSpans(),
			LocalAgentHostPort: config.AgentAddr(),
		},
	}

	tracer, closer, err := cfg.NewTracer(
		jaegercfg.Logger(jaegerzap.NewLogger(logger.With(zap.String("component", "jaeger")))),
	)
	if err != nil {
		return nil, errors.Wrap(err, "cannot init tracing")
	}
	opentracing.SetGlobalTracer(tracer)
	logger.Info("tracing initialised",
		zap.String("service", config.ServiceName()),
		zap.Bool("disabled", config.Disabled()))
	return closer, nil
}

package log

import (
	"log"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Setup builds the service-wide logger. Trace context is attached to every
// entry emitted through Logger.Ctx.
func Setup() *otelzap.Logger {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("error setup logger: %v", err)
	}

	return otelzap.New(zapLogger,
		otelzap.WithMinLevel(zap.InfoLevel),
		otelzap.WithStackTrace(true),
	)
}

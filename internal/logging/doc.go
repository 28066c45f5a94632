// Package logging provides structured logging for bebop on top of Zap.
//
// The package adds:
//   - a Trace level (-2) below Debug
//   - stdout output plus optional OpenTelemetry output
//   - context fields for trace correlation, site, environment and request context
//   - encoder-level redaction of sensitive keys and values
//   - per-level sampling where errors are never sampled
//
// # Usage
//
//	cfg := logging.NewDefaultConfig()
//	logger, err := logging.NewLogger(cfg, nil)
//	if err != nil {
//	    return err
//	}
//	defer logger.Sync()
//
//	ctx = logging.WithSite(ctx, "example.com")
//	ctx = logging.WithEnvironment(ctx, "staging")
//	logger.Info(ctx, "feature enabled", zap.String("feature", "search"))
//
// Libraries that accept an optional logger default to Nop.
//
// # Configuration
//
// Config is loaded by internal/config under the "logging" key, so the
// environment variable BEBOP_LOGGING_LEVEL=debug overrides the file value.
//
// # Testing
//
//	tl := logging.NewTestLogger()
//	tl.Info(ctx, "published", zap.String("channel", "save"))
//	tl.AssertLogged(t, zapcore.InfoLevel, "published")
//	tl.AssertField(t, "published", "channel", "save")
package logging

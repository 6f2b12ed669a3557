// Package logger builds log/slog loggers for the namegen CLI and HTTP API.
//
// New applies functional options over production-safe defaults (JSON, info
// level, stdout) and wraps the handler in a LogHandlerDecorator so that
// request-scoped values such as the request id or environment name are
// attached to every record logged with a context.
//
//	log := logger.New(
//		logger.WithEnvironment("development", "namegen"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "generated names", logger.Pattern(p), logger.Count(10))
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger

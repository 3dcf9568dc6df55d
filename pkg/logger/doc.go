// Package logger builds slog loggers for namekit and keeps attribute names
// consistent across packages.
//
// New returns a *slog.Logger configured through Option values: output format,
// level, static attributes and ContextExtractor callbacks. Extractors run on
// every record, so request-scoped values such as the request id end up in
// each log line without passing loggers around.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "namekit"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.WarnContext(ctx, "registry lookup failed",
//	    logger.Component("namegen.resolver"),
//	    logger.Error(err),
//	)
//
// Attribute helpers return an empty slog.Attr for nil input, which slog
// drops, so callers never need to guard optional values.
package logger

// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New creates a *slog.Logger configured by Option functions: output format
// (text or json), minimum level, static attributes applied to every record,
// and ContextExtractor callbacks that pull request-scoped values out of the
// context on every log call.
//
//	log := logger.New(
//	    logger.WithProduction("carebook"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "notification sent",
//	    logger.UserID(userID),
//	    logger.MessageID(itemID),
//	    logger.Channel("email"),
//	)
//
// Helper constructors such as Group, Error, UserID and EventType live in
// attr.go and keep attribute naming consistent across the codebase. Error
// and Errors produce attributes only when the supplied error is non-nil, so
// they can be passed unconditionally.
package logger

package audit

import "context"

// Option configures logger behavior during initialization.
type Option func(*logger)

// Context extractors enable automatic population of audit events from
// request context. Each returns (value, found); when extraction fails the
// corresponding event field stays empty.

func WithUserIDExtractor(fn func(context.Context) (string, bool)) Option {
	return func(l *logger) {
		l.userIDExtractor = fn
	}
}

func WithSessionIDExtractor(fn func(context.Context) (string, bool)) Option {
	return func(l *logger) {
		l.sessionIDExtractor = fn
	}
}

func WithRequestIDExtractor(fn func(context.Context) (string, bool)) Option {
	return func(l *logger) {
		l.requestIDExtractor = fn
	}
}

func WithIPExtractor(fn func(context.Context) (string, bool)) Option {
	return func(l *logger) {
		l.ipExtractor = fn
	}
}

func WithUserAgentExtractor(fn func(context.Context) (string, bool)) Option {
	return func(l *logger) {
		l.userAgentExtractor = fn
	}
}

// WithMetadataFilter scrubs metadata and snapshots through the filter
// before events reach storage.
func WithMetadataFilter(f *MetadataFilter) Option {
	return func(l *logger) {
		l.filter = f
	}
}

// WithAsync batches writes through a background worker when the storage
// supports bulk inserts. Zero-valued options use the defaults documented
// on AsyncOptions.
func WithAsync(opts AsyncOptions) Option {
	return func(l *logger) {
		l.asyncOptions = &opts
	}
}

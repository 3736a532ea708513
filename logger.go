package routetable

// Logger records noteworthy events emitted by Table, such as a route being
// replaced by a duplicate insert or a lax-mode range that is not an aligned
// CIDR block.
//
// The interface intentionally mirrors slog's Warn signature, so *slog.Logger
// can be used directly without an adapter.
type Logger interface {
	Warn(msg string, args ...any)
}

// noopLogger is the default Logger implementation when logging is not
// explicitly configured.
type noopLogger struct{}

func (noopLogger) Warn(string, ...any) {}

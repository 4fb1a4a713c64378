package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a diagnostic message that is hidden unless verbose output is enabled.
	Debug(msg string)
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a recoverable problem.
	Warn(msg string)
	// Error logs an error with its full cause chain.
	Error(err error)
}

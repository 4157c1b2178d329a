package core

// Logger defines the structured logging operations the domain relies on.
// Fields are free-form key/value pairs attached to each entry.
type Logger interface {
	// Debug logs detailed diagnostic messages
	Debug(message string, fields map[string]any)
	// Info logs general operational messages
	Info(message string, fields map[string]any)
	// Warn logs warnings
	Warn(message string, fields map[string]any)
	// Error logs error messages
	Error(message string, fields map[string]any)
	// Flush ensures all buffered logs are written to their destination
	Flush() error
}

// Package emoji provides symbol constants for CLI output.
package emoji

// Status symbols printed by commands.
const (
	// Success marks a completed check, such as a document that loaded cleanly.
	Success = "✓"

	// Error marks a failed operation.
	Error = "✗"
)

// Package dialog abstracts the modal prompts the registries need so that the
// terminal front end and tests can supply their own implementations.
package dialog

// Dialog is the user-interaction surface for operations that confirm, warn,
// or ask for a file name. Implementations are expected to block until the
// user has responded.
type Dialog interface {
	// Confirm presents a yes/no question and reports the answer.
	Confirm(title, message string) bool
	// Warn presents an error or warning the user must acknowledge.
	Warn(title, message string)
	// Info presents an informational notice.
	Info(title, message string)
	// AskSaveName prompts for a file name to save to, starting from the
	// proposed path. An empty result means the user cancelled.
	AskSaveName(proposed string) string
	// AskOpenName prompts for an existing file matching the given filter
	// description, e.g. `CSV (*.csv)`. An empty result means cancelled.
	AskOpenName(filter string) string
}

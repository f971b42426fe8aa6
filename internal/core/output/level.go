// Package output defines the leveled event sink that carries all
// user-visible output of a pipeline run, and the per-command TaskLogger
// facade that commands write through.
package output

import "fmt"

// Level controls how much of a run's output is shown. Levels are strictly
// ordered: each level shows everything the lower levels show, plus more.
type Level int

const (
	// Quiet shows command lifecycle and file-created events only.
	Quiet Level = iota

	// Summary adds card events (structured summaries) to Quiet.
	Summary

	// Verbose adds progress, info, warning and error messages to Summary.
	Verbose
)

// ParseLevel converts a configuration string into a Level.
func ParseLevel(value string) (Level, error) {
	switch value {
	case "quiet":
		return Quiet, nil
	case "summary", "":
		return Summary, nil
	case "verbose":
		return Verbose, nil
	default:
		return Summary, fmt.Errorf("unknown output level: %q", value)
	}
}

// String implements the Stringer interface
func (l Level) String() string {
	switch l {
	case Quiet:
		return "quiet"
	case Summary:
		return "summary"
	case Verbose:
		return "verbose"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

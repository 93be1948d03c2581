package fallback

import "fmt"

// Severity represents the severity level of a reported issue.
type Severity int

const (
	// SeverityInfo indicates a purely informational message.
	SeverityInfo Severity = iota
	// SeverityWarning indicates a degraded result the client should know about.
	SeverityWarning
	// SeverityError indicates a failure; not currently produced by this package.
	SeverityError
)

// String returns a human-readable representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Issue is a user-facing diagnostic emitted during fallback computation,
// e.g. when a requested font family has no metrics entry. Issues never abort
// a computation; they accompany a degraded result.
type Issue struct {
	Path        string // context for the report, e.g. the stylesheet or config file
	Title       string
	Description string
	Severity    Severity
}

// String formats the issue the way the package tracer would log it.
func (issue Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", issue.Severity, issue.Title, issue.Description)
}

// IssueSink receives diagnostics. Report is fire-and-forget: implementations
// must not block and have no way of failing the computation.
type IssueSink interface {
	Report(Issue)
}

// TraceSink routes issues to this package's tracer. It is the sink GetFallback
// falls back to when the caller passes none.
type TraceSink struct{}

// Report logs the issue at a trace level matching its severity.
func (TraceSink) Report(issue Issue) {
	switch issue.Severity {
	case SeverityError:
		tracer().Errorf("%s", issue)
	case SeverityWarning:
		tracer().Infof("%s", issue)
	default:
		tracer().Debugf("%s", issue)
	}
}

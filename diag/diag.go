package diag

import (
	"fmt"
	"strconv"
)

// Kind classifies a diagnostic.
type Kind int

const (
	// OutOfMemory reports a failed list allocation.
	OutOfMemory Kind = iota + 1

	// Truncated reports a payload clipped to the available capacity.
	Truncated

	// InvalidConfigValue reports a rejected configuration value.
	InvalidConfigValue

	// TypeMismatch reports a non-numeric atom where a number was expected.
	TypeMismatch

	// InvalidInlet reports a message the addressed inlet does not accept.
	InvalidInlet
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case OutOfMemory:
		return "OutOfMemory"
	case Truncated:
		return "Truncated"
	case InvalidConfigValue:
		return "InvalidConfigValue"
	case TypeMismatch:
		return "TypeMismatch"
	case InvalidInlet:
		return "InvalidInlet"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Severity is the rendering level of a diagnostic.
type Severity int

const (
	// SeverityWarning diagnostics are gated by the warnings flag.
	SeverityWarning Severity = iota

	// SeverityError diagnostics are always reported.
	SeverityError
)

// String returns "warning" or "error".
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}

	return "warning"
}

// Diagnostic is one reported condition.
type Diagnostic struct {
	// Object names the reporting object instance, if any.
	Object string

	Kind     Kind
	Severity Severity
	Message  string
}

// String renders the diagnostic on one line.
func (d Diagnostic) String() string {
	if d.Object == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}

	return fmt.Sprintf("%s: %s: %s", d.Object, d.Severity, d.Message)
}

// Reporter receives diagnostics.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(d Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Reporter = ReporterFunc(func(Diagnostic) {})

// Collector stores diagnostics in arrival order.
type Collector struct {
	items []Diagnostic
}

// Report appends d.
func (c *Collector) Report(d Diagnostic) { c.items = append(c.items, d) }

// All returns the collected diagnostics.
func (c *Collector) All() []Diagnostic { return c.items }

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int { return len(c.items) }

// Reset drops everything collected so far.
func (c *Collector) Reset() { c.items = c.items[:0] }

// Kinds returns the kinds of the collected diagnostics, in order.
func (c *Collector) Kinds() []Kind {
	out := make([]Kind, len(c.items))
	for i, d := range c.items {
		out[i] = d.Kind
	}

	return out
}

// Has reports whether any collected diagnostic has kind k.
func (c *Collector) Has(k Kind) bool {
	for _, d := range c.items {
		if d.Kind == k {
			return true
		}
	}

	return false
}

// Multi fans a diagnostic out to several reporters.
type Multi []Reporter

// Report forwards d to every non-nil reporter.
func (m Multi) Report(d Diagnostic) {
	for _, r := range m {
		if r != nil {
			r.Report(d)
		}
	}
}

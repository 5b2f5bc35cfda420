package diag

import "fmt"

// Emitter formats and forwards diagnostics for one object.
// A nil *Emitter drops everything, so components can hold one unconditionally.
type Emitter struct {
	// Object is stamped on every diagnostic.
	Object string

	// Reporter receives the diagnostics. Nil means Discard.
	Reporter Reporter

	// Warnings enables warning-severity diagnostics.
	Warnings bool
}

// NewEmitter returns an Emitter with warnings enabled.
func NewEmitter(object string, r Reporter) *Emitter {
	return &Emitter{Object: object, Reporter: r, Warnings: true}
}

// Warn reports a warning when warnings are enabled.
func (e *Emitter) Warn(kind Kind, format string, args ...any) {
	if e == nil || !e.Warnings {
		return
	}
	e.emit(kind, SeverityWarning, format, args...)
}

// Error reports an error regardless of the warnings flag.
func (e *Emitter) Error(kind Kind, format string, args ...any) {
	if e == nil {
		return
	}
	e.emit(kind, SeverityError, format, args...)
}

func (e *Emitter) emit(kind Kind, sev Severity, format string, args ...any) {
	r := e.Reporter
	if r == nil {
		return
	}
	r.Report(Diagnostic{
		Object:   e.Object,
		Kind:     kind,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
	})
}

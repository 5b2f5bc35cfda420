package diag

import "go.uber.org/zap"

// ZapReporter renders diagnostics as structured log entries.
// Warnings go to Warn, errors to Error.
type ZapReporter struct {
	logger *zap.Logger
}

// NewZapReporter returns a reporter writing to l. A nil logger is replaced
// by a no-op logger.
func NewZapReporter(l *zap.Logger) *ZapReporter {
	if l == nil {
		l = zap.NewNop()
	}

	return &ZapReporter{logger: l}
}

// Report logs d.
func (z *ZapReporter) Report(d Diagnostic) {
	fields := []zap.Field{
		zap.Stringer("kind", d.Kind),
	}
	if d.Object != "" {
		fields = append(fields, zap.String("object", d.Object))
	}
	if d.Severity == SeverityError {
		z.logger.Error(d.Message, fields...)

		return
	}
	z.logger.Warn(d.Message, fields...)
}

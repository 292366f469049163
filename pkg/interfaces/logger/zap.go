package logger

import "go.uber.org/zap"

// Zap forwards log calls to a *zap.Logger.
type Zap struct {
	l *zap.Logger
}

var _ Logger = (*Zap)(nil)

// NewZap wraps an existing zap logger. A nil logger falls back to zap.NewNop.
func NewZap(l *zap.Logger) *Zap {
	if l == nil {
		l = zap.NewNop()
	}
	return &Zap{l: l}
}

func (z *Zap) With(fields ...Field) Logger {
	return &Zap{l: z.l.With(zapFields(fields)...)}
}

func (z *Zap) Debug(msg string, fields ...Field) { z.l.Debug(msg, zapFields(fields)...) }
func (z *Zap) Info(msg string, fields ...Field)  { z.l.Info(msg, zapFields(fields)...) }
func (z *Zap) Warn(msg string, fields ...Field)  { z.l.Warn(msg, zapFields(fields)...) }
func (z *Zap) Error(msg string, fields ...Field) { z.l.Error(msg, zapFields(fields)...) }

func zapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}

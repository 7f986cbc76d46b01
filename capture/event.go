package capture

import (
	"go.uber.org/zap/zapcore"
)

// CapturedEvent is one recorded log event. It is immutable once appended to a
// store: the entry, the payload fields and the token association are all fixed
// at capture time.
type CapturedEvent struct {
	// Entry holds timestamp, level, logger name and message text.
	Entry zapcore.Entry
	// Context holds the event's payload fields, scope tags already stripped.
	Context []zapcore.Field
	// Token is the innermost scope token active when the event was written.
	// Zero when no scope was active.
	Token Token
	// Ancestry lists the tokens of the enclosing scopes, nearest first.
	Ancestry []Token
}

// Tagged reports whether the event was captured under any scope.
func (e CapturedEvent) Tagged() bool {
	return !e.Token.IsZero()
}

// Within reports whether the event belongs to tok, directly or through a
// nested child scope.
func (e CapturedEvent) Within(tok Token) bool {
	if e.Token == tok {
		return true
	}
	for _, t := range e.Ancestry {
		if t == tok {
			return true
		}
	}
	return false
}

// ContextMap decodes the payload fields into plain values keyed by field name.
func (e CapturedEvent) ContextMap() map[string]any {
	enc := zapcore.NewMapObjectEncoder()
	for i := range e.Context {
		e.Context[i].AddTo(enc)
	}
	return enc.Fields
}

// Severity returns the event level under the Verbose/Information vocabulary.
func (e CapturedEvent) Severity() string {
	return SeverityName(e.Entry.Level)
}

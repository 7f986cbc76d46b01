package capture

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type captureCore struct {
	zapcore.LevelEnabler
	store  *Store
	fields []zapcore.Field
}

// NewCore returns a zapcore.Core that records every entry it receives into
// store. The core enables all levels, so upstream level filtering on sibling
// cores never hides events from the store.
func NewCore(store *Store) zapcore.Core {
	return &captureCore{LevelEnabler: zapcore.DebugLevel, store: store}
}

// Attach tees a capture core for store onto an existing logger. The logger
// keeps writing to its own cores; store additionally receives every entry.
func Attach(l *zap.Logger, store *Store) *zap.Logger {
	return l.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, NewCore(store))
	}))
}

func (c *captureCore) Level() zapcore.Level {
	return zapcore.LevelOf(c.LevelEnabler)
}

func (c *captureCore) With(fields []zapcore.Field) zapcore.Core {
	clone := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	clone = append(clone, c.fields...)
	clone = append(clone, fields...)
	return &captureCore{LevelEnabler: c.LevelEnabler, store: c.store, fields: clone}
}

func (c *captureCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *captureCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	all := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	all = append(all, c.fields...)
	all = append(all, fields...)

	// Split the hidden scope tag out of the payload. When loggers were bound
	// more than once the last tag wins, which is the innermost scope.
	var scope *Scope
	payload := make([]zapcore.Field, 0, len(all))
	for _, f := range all {
		if f.Type == zapcore.SkipType && f.Key == scopeFieldKey {
			if s, ok := f.Interface.(*Scope); ok {
				scope = s
				continue
			}
		}
		payload = append(payload, f)
	}

	ev := CapturedEvent{Entry: ent, Context: payload}
	if chain := scope.chain(); len(chain) > 0 {
		ev.Token = chain[0]
		ev.Ancestry = chain[1:]
	}

	c.store.append(ev)
	return nil
}

func (c *captureCore) Sync() error {
	return nil
}

package capture

import (
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap/zapcore"
)

// Events is an ordered snapshot of captured events. The filter methods return
// narrowed copies and never mutate the receiver, so one snapshot can back any
// number of assertions.
type Events []CapturedEvent

func (e Events) Len() int {
	return len(e)
}

// Messages returns the message text of every event, in capture order.
func (e Events) Messages() []string {
	out := make([]string, len(e))
	for i := range e {
		out[i] = e[i].Entry.Message
	}
	return out
}

// Filter keeps the events for which keep returns true.
func (e Events) Filter(keep func(CapturedEvent) bool) Events {
	out := make(Events, 0, len(e))
	for i := range e {
		if keep(e[i]) {
			out = append(out, e[i])
		}
	}
	return out
}

// Contains reports whether any event satisfies pred.
func (e Events) Contains(pred func(CapturedEvent) bool) bool {
	for i := range e {
		if pred(e[i]) {
			return true
		}
	}
	return false
}

// FilterMessage keeps events whose message equals msg exactly.
func (e Events) FilterMessage(msg string) Events {
	return e.Filter(func(ev CapturedEvent) bool {
		return ev.Entry.Message == msg
	})
}

// FilterMessageSnippet keeps events whose message contains snippet.
func (e Events) FilterMessageSnippet(snippet string) Events {
	return e.Filter(func(ev CapturedEvent) bool {
		return strings.Contains(ev.Entry.Message, snippet)
	})
}

// FilterLevelExact keeps events written at exactly level.
func (e Events) FilterLevelExact(level zapcore.Level) Events {
	return e.Filter(func(ev CapturedEvent) bool {
		return ev.Entry.Level == level
	})
}

// FilterFieldKey keeps events carrying a payload field named key.
func (e Events) FilterFieldKey(key string) Events {
	return e.Filter(func(ev CapturedEvent) bool {
		for i := range ev.Context {
			if ev.Context[i].Key == key {
				return true
			}
		}
		return false
	})
}

// FilterField keeps events carrying a payload field equal to field.
func (e Events) FilterField(field zapcore.Field) Events {
	return e.Filter(func(ev CapturedEvent) bool {
		for i := range ev.Context {
			if ev.Context[i].Equals(field) {
				return true
			}
		}
		return false
	})
}

type eventJSON struct {
	Time    time.Time      `json:"ts"`
	Level   string         `json:"level"`
	Logger  string         `json:"logger,omitempty"`
	Message string         `json:"msg"`
	Token   string         `json:"token,omitempty"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// MarshalJSON renders the snapshot as an array of flat event records, handy
// for dumping a scope's output into a failed-assertion message.
func (e Events) MarshalJSON() ([]byte, error) {
	out := make([]eventJSON, len(e))
	for i := range e {
		out[i] = eventJSON{
			Time:    e[i].Entry.Time,
			Level:   e[i].Entry.Level.String(),
			Logger:  e[i].Entry.LoggerName,
			Message: e[i].Entry.Message,
		}
		if e[i].Tagged() {
			out[i].Token = e[i].Token.String()
		}
		if len(e[i].Context) > 0 {
			out[i].Fields = e[i].ContextMap()
		}
	}
	return json.Marshal(out)
}

// Package capture implements correlation-keyed capture of zap log events for
// concurrent tests sharing one logging destination.
//
// The [Store] type is an append-only, concurrency-safe collection of
// [CapturedEvent] records. Events flow in through a zapcore.Core built with
// [NewCore] (or teed onto an existing logger with [Attach]); each event is
// tagged, at write time, with the token of the correlation scope that produced
// it. [Initialize] installs the capture path on the process-global zap logger
// and is idempotent: repeat calls never attach a second consumer and never
// discard previously captured events.
//
// A correlation scope is opened with [Begin], which mints a 128-bit [Token]
// and attaches it to the returned context. Scopes nest; releasing an inner
// scope restores the outer token. Loggers are bound to a scope with
// [Scope.Logger] or [Logger] — the token rides as dedicated metadata, never as
// a payload field, so application data can never be mistaken for the tag.
//
// [Store.Query] returns a point-in-time snapshot of the events belonging to a
// token (including its nested scopes) as an ordered [Events] slice with
// observer-style filters: FilterMessage, FilterMessageSnippet,
// FilterLevelExact, FilterField, and FilterFieldKey.
//
// Tokens interoperate with OpenTelemetry: they convert losslessly to and from
// 128-bit trace ids, and [Inject]/[Extract] carry the active token across
// transport boundaries using the Jaeger propagation format.
package capture

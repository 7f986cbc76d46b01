package capture

import (
	"context"

	"go.opentelemetry.io/contrib/propagators/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

var propagator = jaeger.Jaeger{}

// Inject writes the active correlation token into carrier using the Jaeger
// trace-context wire format. A collaborator on the other side of a transport
// boundary can Extract it and keep tagging events with the same token. No-op
// when ctx carries no active scope.
func Inject(ctx context.Context, carrier propagation.TextMapCarrier) {
	tok, ok := ActiveToken(ctx)
	if !ok {
		return
	}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    tok.TraceID(),
		SpanID:     spanIDFor(tok),
		TraceFlags: trace.FlagsSampled,
	})
	propagator.Inject(trace.ContextWithSpanContext(ctx, sc), carrier)
}

// Extract resumes the correlation scope encoded in carrier, returning a
// context whose active token matches the injecting side. The resumed scope
// has no parent chain; it stands alone in the receiving process.
func Extract(ctx context.Context, carrier propagation.TextMapCarrier) (context.Context, bool) {
	sc := trace.SpanContextFromContext(propagator.Extract(ctx, carrier))
	if !sc.TraceID().IsValid() {
		return ctx, false
	}
	s := &Scope{token: TokenFromTraceID(sc.TraceID())}
	return context.WithValue(ctx, ctxKey{}, s), true
}

// FromSpan begins a scope whose token is the trace id of the span active on
// ctx, letting traced code share one identifier for both tracing and log
// correlation. Fails when ctx carries no recording span context.
func FromSpan(ctx context.Context) (context.Context, *Scope, bool) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.TraceID().IsValid() {
		return ctx, nil, false
	}
	parent, _ := ctx.Value(ctxKey{}).(*Scope)
	s := &Scope{token: TokenFromTraceID(sc.TraceID()), parent: parent}
	return context.WithValue(ctx, ctxKey{}, s), s, true
}

// spanIDFor derives a deterministic non-zero span id from the token's low
// half. Jaeger refuses span contexts with a zero span id.
func spanIDFor(tok Token) trace.SpanID {
	var id trace.SpanID
	copy(id[:], tok[8:])
	if !id.IsValid() {
		id[7] = 1
	}
	return id
}

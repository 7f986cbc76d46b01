package capture

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

func TestInjectExtractRoundtrip(t *testing.T) {
	ctx, s := Begin(context.Background())

	carrier := propagation.MapCarrier{}
	Inject(ctx, carrier)
	require.NotEmpty(t, carrier.Keys())

	resumed, ok := Extract(context.Background(), carrier)
	require.True(t, ok)

	tok, active := ActiveToken(resumed)
	require.True(t, active)
	assert.Equal(t, s.Token(), tok)
}

func TestInjectWithoutScopeIsNoop(t *testing.T) {
	carrier := propagation.MapCarrier{}
	Inject(context.Background(), carrier)
	assert.Empty(t, carrier.Keys())

	_, ok := Extract(context.Background(), carrier)
	assert.False(t, ok)
}

func TestExtractTagsRemoteEvents(t *testing.T) {
	store := NewStore()
	base := zap.New(NewCore(store))

	ctx, s := Begin(context.Background())

	// hand the token to a "remote" handler over http headers
	h := http.Header{}
	Inject(ctx, propagation.HeaderCarrier(h))

	remote, ok := Extract(context.Background(), propagation.HeaderCarrier(h))
	require.True(t, ok)

	remoteTok, active := ActiveToken(remote)
	require.True(t, active)
	assert.Equal(t, s.Token(), remoteTok)

	Bind(remote, base).Info("handled remotely")

	events := store.Query(s.Token())
	require.Equal(t, 1, events.Len())
	assert.Equal(t, "handled remotely", events[0].Entry.Message)
}

func TestFromSpanSharesTraceID(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer func() {
		_ = tp.Shutdown(context.Background())
	}()

	ctx, span := tp.Tracer("capture-test").Start(context.Background(), "operation")
	defer span.End()

	scoped, s, ok := FromSpan(ctx)
	require.True(t, ok)
	assert.Equal(t, TokenFromTraceID(span.SpanContext().TraceID()), s.Token())

	tok, active := ActiveToken(scoped)
	require.True(t, active)
	assert.Equal(t, s.Token(), tok)
}

func TestFromSpanWithoutSpan(t *testing.T) {
	_, _, ok := FromSpan(context.Background())
	assert.False(t, ok)
}

func TestSpanIDForNeverZero(t *testing.T) {
	assert.True(t, spanIDFor(Token{}).IsValid())
	assert.True(t, spanIDFor(NewToken()).IsValid())
}

package capture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCoreTagsBoundLogger(t *testing.T) {
	store := NewStore()
	base := zap.New(NewCore(store))

	_, s := Begin(context.Background())
	s.Logger(base).Info("hello", zap.String("user", "tester"))

	events := store.Query(s.Token())
	require.Equal(t, 1, events.Len())
	assert.Equal(t, "hello", events[0].Entry.Message)
	assert.Equal(t, s.Token(), events[0].Token)
	assert.Equal(t, map[string]any{"user": "tester"}, events[0].ContextMap())

	// the scope tag never shows up as a payload field
	for _, f := range events[0].Context {
		assert.NotEqual(t, scopeFieldKey, f.Key)
	}
}

func TestCoreUntaggedWithoutScope(t *testing.T) {
	store := NewStore()
	zap.New(NewCore(store)).Warn("orphan")

	require.Equal(t, 1, store.Len())
	events := store.Untagged()
	require.Equal(t, 1, events.Len())
	assert.False(t, events[0].Tagged())
	assert.Empty(t, store.Query(NewToken()))
}

func TestCoreInnermostScopeWins(t *testing.T) {
	store := NewStore()
	base := zap.New(NewCore(store))

	ctx, outer := Begin(context.Background())
	_, inner := Begin(ctx)

	// bound twice: outer first, inner on top
	log := inner.Logger(outer.Logger(base))
	log.Info("nested")

	events := store.Query(inner.Token())
	require.Equal(t, 1, events.Len())
	assert.Equal(t, inner.Token(), events[0].Token)
	assert.Contains(t, events[0].Ancestry, outer.Token())
}

func TestCoreReleasedScopeFallsBack(t *testing.T) {
	store := NewStore()
	base := zap.New(NewCore(store))

	ctx, outer := Begin(context.Background())
	_, inner := Begin(ctx)
	log := inner.Logger(base)

	require.NoError(t, inner.Release())
	log.Info("after inner release")

	events := store.Query(outer.Token())
	require.Equal(t, 1, events.Len())
	assert.Equal(t, outer.Token(), events[0].Token)

	// an event is only attributed to the released scope while it was open
	assert.Empty(t, store.Query(inner.Token()))
}

func TestAttachKeepsExistingSink(t *testing.T) {
	obsCore, obs := observer.New(zapcore.DebugLevel)
	store := NewStore()
	log := Attach(zap.New(obsCore), store)

	_, s := Begin(context.Background())
	s.Logger(log).Debug("teed")

	assert.Equal(t, 1, obs.Len())
	require.Equal(t, 1, store.Query(s.Token()).Len())
}

func TestCoreCapturesBelowSiblingLevel(t *testing.T) {
	// sibling core only accepts errors; capture still sees everything
	obsCore, obs := observer.New(zapcore.ErrorLevel)
	store := NewStore()
	log := zap.New(zapcore.NewTee(obsCore, NewCore(store)))

	_, s := Begin(context.Background())
	s.Logger(log).Debug("quiet")

	assert.Equal(t, 0, obs.Len())
	require.Equal(t, 1, store.Query(s.Token()).Len())
}

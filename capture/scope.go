package capture

import (
	"context"
	"sync/atomic"

	"github.com/roadrunner-server/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// scopeFieldKey is the reserved key of the hidden field carrying the scope
// through zap. The field is SkipType, so encoders never render it.
const scopeFieldKey string = "correlation_scope"

type ctxKey struct{}

// Scope binds a Token to a unit of work for its lifetime. Scopes nest: a scope
// begun from a context that already carries one chains to it, and releasing
// the inner scope makes the outer token active again.
type Scope struct {
	token    Token
	parent   *Scope
	released atomic.Bool
}

// Begin starts a new correlation scope with a fresh token and returns the
// derived context carrying it. Release the scope when the unit of work ends:
//
//	ctx, scope := capture.Begin(ctx)
//	defer scope.Release() //nolint:errcheck
func Begin(ctx context.Context) (context.Context, *Scope) {
	parent, _ := ctx.Value(ctxKey{}).(*Scope)
	s := &Scope{token: NewToken(), parent: parent}
	return context.WithValue(ctx, ctxKey{}, s), s
}

func (s *Scope) Token() Token {
	return s.token
}

// Release ends the scope. The policy for misuse is fail-fast: releasing the
// same scope twice returns an error and leaves the first release in effect.
func (s *Scope) Release() error {
	const op = errors.Op("scope_release")
	if !s.released.CompareAndSwap(false, true) {
		return errors.E(op, errors.Str("correlation scope released twice"))
	}
	return nil
}

// active walks the chain to the innermost scope that is still open.
func (s *Scope) active() *Scope {
	for c := s; c != nil; c = c.parent {
		if !c.released.Load() {
			return c
		}
	}
	return nil
}

// chain resolves the tokens an event written through this scope belongs to,
// innermost first. Empty when every scope in the chain has been released.
func (s *Scope) chain() []Token {
	a := s.active()
	if a == nil {
		return nil
	}
	ts := make([]Token, 0, 4)
	for c := a; c != nil; c = c.parent {
		ts = append(ts, c.token)
	}
	return ts
}

// ActiveToken reports the token currently active on ctx, if any. Released
// scopes are skipped, so after an inner Release the enclosing token wins.
func ActiveToken(ctx context.Context) (Token, bool) {
	s, _ := ctx.Value(ctxKey{}).(*Scope)
	a := s.active()
	if a == nil {
		return Token{}, false
	}
	return a.token, true
}

// Logger returns base bound to the scope. Every entry written through the
// returned logger (and loggers derived from it) is tagged with the scope's
// token when it reaches a capture core. The tag travels as dedicated metadata,
// not as a payload field, so it can never collide with application data.
func (s *Scope) Logger(base *zap.Logger) *zap.Logger {
	return base.With(s.field())
}

func (s *Scope) field() zap.Field {
	return zap.Field{Key: scopeFieldKey, Type: zapcore.SkipType, Interface: s}
}

// Logger returns the process-global logger bound to the scope active on ctx,
// or the global logger unchanged when ctx carries no scope.
func Logger(ctx context.Context) *zap.Logger {
	return Bind(ctx, zap.L())
}

// Bind returns base bound to the scope carried by ctx, or base unchanged when
// ctx carries none.
func Bind(ctx context.Context, base *zap.Logger) *zap.Logger {
	if s, ok := ctx.Value(ctxKey{}).(*Scope); ok {
		return base.With(s.field())
	}
	return base
}

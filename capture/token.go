package capture

import (
	"github.com/google/uuid"
	"github.com/roadrunner-server/errors"
	"go.opentelemetry.io/otel/trace"
)

// Token is a 128-bit correlation identifier. A fresh token is minted for every
// scope; equality is by value. The zero Token marks an untagged event.
type Token [16]byte

// NewToken returns a random token (UUIDv4 under the hood).
func NewToken() Token {
	return Token(uuid.New())
}

// ParseToken parses the canonical string form produced by Token.String.
func ParseToken(s string) (Token, error) {
	const op = errors.Op("parse_token")
	id, err := uuid.Parse(s)
	if err != nil {
		return Token{}, errors.E(op, err)
	}
	return Token(id), nil
}

func (t Token) String() string {
	return uuid.UUID(t).String()
}

func (t Token) IsZero() bool {
	return t == Token{}
}

// TraceID reinterprets the token as an OpenTelemetry trace id. Both are
// 128-bit values, so the conversion is lossless in both directions.
func (t Token) TraceID() trace.TraceID {
	return trace.TraceID(t)
}

// TokenFromTraceID adopts a trace id as a correlation token.
func TokenFromTraceID(id trace.TraceID) Token {
	return Token(id)
}

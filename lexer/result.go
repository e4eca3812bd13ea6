package lexer

import (
	"fmt"
)

type resultKind int

const (
	resultIgnored = resultKind(iota)
	resultSuccess
	resultFailed
)

// Result is the outcome of applying one recognizer module at the current
// input position:
//
//   - Success: the module claimed a token; Result carries the token and
//     the unconsumed remainder of the input.
//   - Ignored: the module does not claim this position; the pipeline moves
//     on to the next module.
//   - Failed: the module claimed the position but the input is malformed
//     (e.g. an unterminated string literal); the stream surfaces the
//     diagnostic and ends.
//
// Results are produced fresh per module per position and never persisted.
type Result[L any] struct {
	kind      resultKind
	token     L
	remainder string
	message   string
}

func Success[L any](token L, remainder string) Result[L] {
	return Result[L]{
		kind:      resultSuccess,
		token:     token,
		remainder: remainder,
	}
}

func Ignored[L any]() Result[L] {
	return Result[L]{}
}

func Failed[L any](format string, args ...interface{}) Result[L] {
	return Result[L]{
		kind:    resultFailed,
		message: fmt.Sprintf(format, args...),
	}
}

func (result Result[L]) IsSuccess() bool {
	return result.kind == resultSuccess
}

func (result Result[L]) IsIgnored() bool {
	return result.kind == resultIgnored
}

func (result Result[L]) IsFailed() bool {
	return result.kind == resultFailed
}

// Token returns the claimed token and remainder.  Only meaningful for
// Success results.
func (result Result[L]) Token() (L, string) {
	return result.token, result.remainder
}

// Message returns the diagnostic text.  Only meaningful for Failed results.
func (result Result[L]) Message() string {
	return result.message
}

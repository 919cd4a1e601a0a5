package parser

import (
	"fmt"

	"go-parsec/pkg/reply"
	"go-parsec/pkg/stream"
	"go-parsec/pkg/tracelog"
)

// WithTrace wraps p so that every run logs a Debug-level entry event
// (name, input position) and exit event (name, outcome variant, resulting
// position) to logger. It never changes p's Reply — tracing is purely an
// observability hook.
func WithTrace[T, R any](p Parser[T, R], name string, logger tracelog.Logger) Parser[T, R] {
	if logger == nil {
		return p
	}
	return func(s stream.Stream[T]) reply.Reply[T, R] {
		tracelog.Debugf(logger, "enter", tracelog.F("parser", name), tracelog.F("pos", fmt.Sprint(s.Position())))
		r := Run(p, s)
		tracelog.Debugf(logger, "exit", tracelog.F("parser", name), tracelog.F("outcome", r.Variant().String()), tracelog.F("pos", fmt.Sprint(r.Stream().Position())))
		return r
	}
}

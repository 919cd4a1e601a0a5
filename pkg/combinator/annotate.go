package combinator

import (
	"go-parsec/pkg/message"
	"go-parsec/pkg/parser"
	"go-parsec/pkg/reply"
	"go-parsec/pkg/stream"
)

// Annotate runs p and appends msgs to the result's message list
// regardless of which variant it is.
func Annotate[T, R any](p parser.Parser[T, R], msgs ...message.ErrorMessage) parser.Parser[T, R] {
	return func(s stream.Stream[T]) reply.Reply[T, R] {
		return parser.Run(p, s).WithMessages(msgs)
	}
}

// Rescue converts an Error reply into a Failure, preserving messages;
// Success and Failure pass through unchanged. The converted reply's
// stream is the *input* stream — the position of the original attempt,
// not wherever the Error was raised.
func Rescue[T, R any](p parser.Parser[T, R]) parser.Parser[T, R] {
	return RescueSeverity(p, message.All)
}

// RescueSeverity is Rescue, but only demotes Errors whose message
// severity is a member of severities; other Errors pass through
// unchanged.
func RescueSeverity[T, R any](p parser.Parser[T, R], severities message.Severity) parser.Parser[T, R] {
	return func(s stream.Stream[T]) reply.Reply[T, R] {
		r := parser.Run(p, s)
		if r.IsError() && severities.Any(r.Fatal().Severity) {
			return reply.Failed[T, R](s, r.Messages())
		}
		return r
	}
}

// diagnoseWhen runs p; if its variant equals outcome, the reply is
// replaced by an Error reply carrying a single diagnostic at the given
// severity (positioned where p's reply left the stream); otherwise p's
// reply passes through untouched. This is the building block behind the
// nine ErrorWhen*/WarnWhen*/MessageWhen* combinators: error, warn, and
// message all yield the Error *Reply variant*, and differ only in the
// message's severity field.
func diagnoseWhen[T, R any](p parser.Parser[T, R], outcome reply.Variant, sev message.Severity, text string) parser.Parser[T, R] {
	return func(s stream.Stream[T]) reply.Reply[T, R] {
		r := parser.Run(p, s)
		if r.Variant() != outcome {
			return r
		}
		at := r.Stream().Position()
		return reply.Failing[T, R](r.Stream(), message.New(sev, text, at), r.Messages())
	}
}

// ErrorWhenSuccess, ErrorWhenFailure, and ErrorWhenError fire an
// Error-severity diagnostic only when p's outcome matches the combinator's
// name; any other outcome passes through unchanged.
func ErrorWhenSuccess[T, R any](p parser.Parser[T, R], text string) parser.Parser[T, R] {
	return diagnoseWhen(p, reply.Success, message.Error, text)
}
func ErrorWhenFailure[T, R any](p parser.Parser[T, R], text string) parser.Parser[T, R] {
	return diagnoseWhen(p, reply.Failure, message.Error, text)
}
func ErrorWhenError[T, R any](p parser.Parser[T, R], text string) parser.Parser[T, R] {
	return diagnoseWhen(p, reply.Error, message.Error, text)
}

// WarnWhenSuccess, WarnWhenFailure, and WarnWhenError are the Warn-severity
// counterparts.
func WarnWhenSuccess[T, R any](p parser.Parser[T, R], text string) parser.Parser[T, R] {
	return diagnoseWhen(p, reply.Success, message.Warn, text)
}
func WarnWhenFailure[T, R any](p parser.Parser[T, R], text string) parser.Parser[T, R] {
	return diagnoseWhen(p, reply.Failure, message.Warn, text)
}
func WarnWhenError[T, R any](p parser.Parser[T, R], text string) parser.Parser[T, R] {
	return diagnoseWhen(p, reply.Error, message.Warn, text)
}

// MessageWhenSuccess, MessageWhenFailure, and MessageWhenError are the
// Message-severity counterparts.
func MessageWhenSuccess[T, R any](p parser.Parser[T, R], text string) parser.Parser[T, R] {
	return diagnoseWhen(p, reply.Success, message.Message, text)
}
func MessageWhenFailure[T, R any](p parser.Parser[T, R], text string) parser.Parser[T, R] {
	return diagnoseWhen(p, reply.Failure, message.Message, text)
}
func MessageWhenError[T, R any](p parser.Parser[T, R], text string) parser.Parser[T, R] {
	return diagnoseWhen(p, reply.Error, message.Message, text)
}

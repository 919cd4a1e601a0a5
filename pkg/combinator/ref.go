package combinator

import (
	"sync/atomic"

	"go-parsec/internal/registry"
	"go-parsec/pkg/parseerr"
	"go-parsec/pkg/parser"
	"go-parsec/pkg/parsecfg"
	"go-parsec/pkg/reply"
	"go-parsec/pkg/stream"
)

// Grammar is a name-indexed set of mutually-recursive parsers sharing a
// token type T. It backs Ref, the forward-declaration mechanism a grammar
// with cyclic (but not left-recursive) rule references needs: rule
// "expr" can Ref rule "term" before "term" has been Defined, as long as
// Define happens before the grammar is actually run.
//
// maxDepth, when non-zero, bounds how many nested Ref calls a single
// grammar may make before Ref panics with a parseerr.ConstructionError
// instead of exhausting the Go call stack (see
// pkg/parsecfg.RunConfig.MaxDepth). The counter is shared across whatever
// concurrently running parses share this Grammar value — a best-effort
// safety net, not a per-run-isolated guard.
type Grammar[T any] struct {
	reg      *registry.Registry
	maxDepth int32
	depth    int32
}

// NewGrammar creates an empty rule registry with no recursion guard.
func NewGrammar[T any]() *Grammar[T] {
	return &Grammar[T]{reg: registry.New()}
}

// NewGuardedGrammar creates an empty rule registry that panics with a
// parseerr.ConstructionError once nested Ref calls exceed maxDepth.
func NewGuardedGrammar[T any](maxDepth int) *Grammar[T] {
	return &Grammar[T]{reg: registry.New(), maxDepth: int32(maxDepth)}
}

// NewGrammarFromConfig builds a Grammar honoring cfg: guarded at
// cfg.MaxDepth when cfg.EnableRecursionGuard is set, unguarded otherwise.
// This is the concrete consumer pkg/parsecfg.RunConfig is loaded for —
// an author loads a RunConfig from disk (parsecfg.Load) and hands it
// straight to the grammar that will run with it.
func NewGrammarFromConfig[T any](cfg parsecfg.RunConfig) *Grammar[T] {
	if cfg.EnableRecursionGuard {
		return NewGuardedGrammar[T](cfg.MaxDepth)
	}
	return NewGrammar[T]()
}

// Define registers name as built, at most once and on first use, by
// build.
func Define[T, R any](g *Grammar[T], name string, build func() parser.Parser[T, R]) {
	g.reg.Register(name, func() (interface{}, error) {
		return build(), nil
	})
}

// Ref returns a Parser that resolves name in g on every run — building and
// memoizing it the first time, delegating to the cached Parser value on
// every call after — and runs it against the given stream.
func Ref[T, R any](g *Grammar[T], name string) parser.Parser[T, R] {
	return func(s stream.Stream[T]) reply.Reply[T, R] {
		if g.maxDepth > 0 {
			depth := atomic.AddInt32(&g.depth, 1)
			defer atomic.AddInt32(&g.depth, -1)
			if depth > g.maxDepth {
				panic(parseerr.InvalidArgument("Ref", "recursion depth exceeded ("+name+")"))
			}
		}
		v, err := g.reg.Resolve(name)
		if err != nil {
			panic(err)
		}
		return parser.Run(v.(parser.Parser[T, R]), s)
	}
}

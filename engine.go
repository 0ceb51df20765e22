package verdict

import (
	"log/slog"

	"github.com/verdicthq/verdict/trie"
)

// Engine binds a prefix trie of rules to a registration and evaluation
// API keyed by ordered key sequences, such as category paths. Coarse
// default rules registered at shallow paths govern every deeper path
// that extends them until a more specific registration overrides them;
// lookup picks the deepest registered rule along the requested path.
//
// The Engine is a convenience for keyed lookup. Rule trees can be
// built and evaluated directly without one; do that when evaluation
// errors must reach the caller (see Eval).
//
// An Engine makes no guarantee for Register calls racing with Eval
// calls or with each other. Wrap it in a SyncEngine when registrations
// happen while lookups are in flight.
type Engine[K comparable] struct {
	rules *trie.Trie[K, Rule]
	log   *slog.Logger
}

// Option configures an Engine.
type Option[K comparable] func(*Engine[K])

// WithLogger makes the engine log, at warn level, the evaluation
// errors Eval converts to "no result". Without a logger those errors
// are invisible.
func WithLogger[K comparable](log *slog.Logger) Option[K] {
	return func(e *Engine[K]) { e.log = log }
}

// NewEngine creates an empty engine.
func NewEngine[K comparable](opts ...Option[K]) *Engine[K] {
	e := &Engine[K]{rules: trie.New[K, Rule]()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register stores r under the key path. A later registration at the
// same path replaces the earlier one. Registering nil clears the exact
// path without touching registrations below it. Registering with no
// keys is a no-op.
func (e *Engine[K]) Register(r Rule, keys ...K) {
	if r == nil {
		e.rules.Clear(keys...)
		return
	}
	e.rules.Put(r, keys...)
}

// Rule returns the rule registered exactly at the key path.
func (e *Engine[K]) Rule(keys ...K) (Rule, bool) {
	return e.rules.Get(keys...)
}

// BestRule returns the governing rule for the key path: the deepest
// registration at the path itself or at one of its prefixes.
func (e *Engine[K]) BestRule(keys ...K) (Rule, bool) {
	return e.rules.GetBest(keys...)
}

// Eval looks up the governing rule for the key path and evaluates it
// against ctx. The second return is false when no rule governs the
// path, when the governing rule did not match, or when its evaluation
// failed.
//
// Swallowing the error is a deliberate trade-off: a lookup-and-apply
// convenience degrades to "no applicable rule" rather than surfacing a
// failure, which also means a misregistered rule evaluated against an
// incompatible context is indistinguishable from a rule that genuinely
// did not match. Use WithLogger to make such failures visible, or
// EvalErr to receive them.
func (e *Engine[K]) Eval(ctx any, keys ...K) (bool, bool) {
	v, ok, err := e.EvalErr(ctx, keys...)
	if err != nil {
		if e.log != nil {
			e.log.Warn("rule evaluation failed",
				slog.Any("keys", keys),
				slog.String("error", err.Error()),
			)
		}
		return false, false
	}
	return v, ok
}

// EvalErr is Eval without the error swallowing: an error raised while
// evaluating the governing rule is returned to the caller, and the
// result is absent.
func (e *Engine[K]) EvalErr(ctx any, keys ...K) (value bool, ok bool, err error) {
	r, ok := e.rules.GetBest(keys...)
	if !ok {
		return false, false, nil
	}
	out, err := r.Eval(ctx)
	if err != nil {
		return false, false, err
	}
	if !out.Matched() {
		return false, false, nil
	}
	return out.Value(), true, nil
}

// Len is the number of registered rules.
func (e *Engine[K]) Len() int {
	return e.rules.Len()
}

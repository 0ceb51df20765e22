package verdict

import "sync"

// SyncEngine serializes access to an Engine with a read-write lock,
// for hosts that reload rule registrations while lookups are in
// flight. Rules themselves are immutable after construction, so the
// lock only guards the registry; evaluation of a looked-up rule runs
// under the read lock.
type SyncEngine[K comparable] struct {
	mu     sync.RWMutex
	engine *Engine[K]
}

// NewSyncEngine creates an empty synchronized engine.
func NewSyncEngine[K comparable](opts ...Option[K]) *SyncEngine[K] {
	return &SyncEngine[K]{engine: NewEngine(opts...)}
}

// Register stores r under the key path. See Engine.Register.
func (e *SyncEngine[K]) Register(r Rule, keys ...K) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.engine.Register(r, keys...)
}

// Eval evaluates the governing rule for the key path. See Engine.Eval.
func (e *SyncEngine[K]) Eval(ctx any, keys ...K) (bool, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.engine.Eval(ctx, keys...)
}

// EvalErr evaluates the governing rule for the key path, surfacing
// evaluation errors. See Engine.EvalErr.
func (e *SyncEngine[K]) EvalErr(ctx any, keys ...K) (bool, bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.engine.EvalErr(ctx, keys...)
}

// Rule returns the rule registered exactly at the key path. See
// Engine.Rule.
func (e *SyncEngine[K]) Rule(keys ...K) (Rule, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.engine.Rule(keys...)
}

// BestRule returns the governing rule for the key path. See
// Engine.BestRule.
func (e *SyncEngine[K]) BestRule(keys ...K) (Rule, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.engine.BestRule(keys...)
}

// Len is the number of registered rules.
func (e *SyncEngine[K]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.engine.Len()
}

// String renders the registered key paths and their rules as a table.
// See Engine.String.
func (e *SyncEngine[K]) String() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.engine.String()
}

// Package trie implements a generic ordered-key prefix tree with exact
// and longest-matching-prefix lookup.
//
// The longest-prefix lookup is what makes the tree useful as a rule
// registry: a value registered at a short path acts as a default for
// every longer path extending it, and a more specific registration at a
// deeper path overrides it without the default having to be
// re-registered at every leaf.
package trie

// Trie maps ordered key sequences to values. The zero value is not
// usable; create one with New.
//
// A Trie is a single mutable structure with no internal locking.
// Callers that interleave Put or Clear with lookups concurrently must
// provide their own synchronization.
type Trie[K comparable, V any] struct {
	root *node[K, V]
}

// A node owns its children. A cleared node keeps its children so that
// deeper registrations stay reachable; it simply no longer contributes
// a value to lookups.
type node[K comparable, V any] struct {
	children map[K]*node[K, V]
	value    V
	present  bool
}

// New creates an empty Trie.
func New[K comparable, V any]() *Trie[K, V] {
	return &Trie[K, V]{root: &node[K, V]{}}
}

// Get returns the value stored exactly at keys. An empty key sequence
// has no exact match.
func (t *Trie[K, V]) Get(keys ...K) (V, bool) {
	var zero V
	if len(keys) == 0 {
		return zero, false
	}
	n := t.root
	for _, k := range keys {
		c, ok := n.children[k]
		if !ok {
			return zero, false
		}
		n = c
	}
	if !n.present {
		return zero, false
	}
	return n.value, true
}

// GetBest returns the value stored at the deepest node along the path
// of keys that holds one, walking from the root until a key has no
// child or the sequence is exhausted. An empty key sequence returns
// absent; the root itself never holds a value (Put with no keys is a
// no-op), so only proper prefixes of keys contribute candidates.
func (t *Trie[K, V]) GetBest(keys ...K) (V, bool) {
	n := t.root
	best := n
	for _, k := range keys {
		c, ok := n.children[k]
		if !ok {
			break
		}
		n = c
		if n.present {
			best = n
		}
	}
	if !best.present {
		var zero V
		return zero, false
	}
	return best.value, true
}

// Put stores v at keys, creating any missing nodes along the path. An
// empty key sequence is a no-op.
func (t *Trie[K, V]) Put(v V, keys ...K) {
	if len(keys) == 0 {
		return
	}
	n := t.root
	for _, k := range keys {
		c, ok := n.children[k]
		if !ok {
			if n.children == nil {
				n.children = make(map[K]*node[K, V])
			}
			c = &node[K, V]{}
			n.children[k] = c
		}
		n = c
	}
	n.value = v
	n.present = true
}

// Clear removes the value stored exactly at keys. The node and its
// descendants are never pruned: registrations below the cleared path
// stay reachable, and the path can be reused by a later Put. Clearing a
// path that holds no value, or an empty key sequence, is a no-op.
func (t *Trie[K, V]) Clear(keys ...K) {
	if len(keys) == 0 {
		return
	}
	n := t.root
	for _, k := range keys {
		c, ok := n.children[k]
		if !ok {
			return
		}
		n = c
	}
	var zero V
	n.value = zero
	n.present = false
}

// Len is the number of nodes, anywhere in the tree, holding a present
// value. Equivalently: the number of distinct key sequences that
// currently map to a value.
func (t *Trie[K, V]) Len() int {
	return t.root.count()
}

func (n *node[K, V]) count() int {
	c := 0
	if n.present {
		c = 1
	}
	for _, child := range n.children {
		c += child.count()
	}
	return c
}

// Walk calls fn once for every stored value with its full key path,
// depth first. The key slice passed to fn is reused between calls;
// copy it if it must outlive the call. Walk stops early when fn
// returns false. Visit order between siblings is unspecified.
func (t *Trie[K, V]) Walk(fn func(keys []K, v V) bool) {
	t.root.walk(nil, fn)
}

func (n *node[K, V]) walk(path []K, fn func([]K, V) bool) bool {
	if n.present {
		if !fn(path, n.value) {
			return false
		}
	}
	for k, c := range n.children {
		if !c.walk(append(path, k), fn) {
			return false
		}
	}
	return true
}

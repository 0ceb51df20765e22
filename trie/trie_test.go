package trie_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/verdicthq/verdict/trie"
)

func TestRoundTrip(t *testing.T) {
	is := is.New(t)

	tr := trie.New[string, int]()
	tr.Put(1, "a")
	tr.Put(2, "a", "b")
	tr.Put(3, "x", "y", "z")

	v, ok := tr.Get("a")
	is.True(ok)
	is.Equal(v, 1)

	v, ok = tr.Get("a", "b")
	is.True(ok)
	is.Equal(v, 2)

	v, ok = tr.Get("x", "y", "z")
	is.True(ok)
	is.Equal(v, 3)

	// Intermediate nodes created along the way hold no value.
	_, ok = tr.Get("x")
	is.True(!ok)
	_, ok = tr.Get("x", "y")
	is.True(!ok)

	// No exact match for unknown or empty key sequences.
	_, ok = tr.Get("nope")
	is.True(!ok)
	_, ok = tr.Get()
	is.True(!ok)
}

func TestPutEmptyKeysIsNoOp(t *testing.T) {
	is := is.New(t)

	tr := trie.New[string, int]()
	tr.Put(1)
	is.Equal(tr.Len(), 0)
	_, ok := tr.GetBest("anything")
	is.True(!ok)
}

func TestGetBest(t *testing.T) {
	is := is.New(t)

	tr := trie.New[string, int]()
	tr.Put(1, "a")
	tr.Put(2, "a", "b", "c")

	// Deeper registrations win over shallower ones.
	v, ok := tr.GetBest("a", "b", "c")
	is.True(ok)
	is.Equal(v, 2)

	// An unregistered extension falls back to the deepest prefix.
	v, ok = tr.GetBest("a", "b", "c", "d")
	is.True(ok)
	is.Equal(v, 2)

	// No entry at ["a","b"]: the best candidate is ["a"].
	v, ok = tr.GetBest("a", "b")
	is.True(ok)
	is.Equal(v, 1)

	// Diverging from the registered path keeps the last candidate seen.
	v, ok = tr.GetBest("a", "x", "y")
	is.True(ok)
	is.Equal(v, 1)

	// Nothing registered on any prefix.
	_, ok = tr.GetBest("q")
	is.True(!ok)

	// Empty key sequence returns absent.
	_, ok = tr.GetBest()
	is.True(!ok)
}

func TestLen(t *testing.T) {
	is := is.New(t)

	tr := trie.New[string, int]()
	is.Equal(tr.Len(), 0)

	tr.Put(1, "a")
	tr.Put(2, "a", "b")
	tr.Put(3, "c")
	is.Equal(tr.Len(), 3)

	// Re-registering the same path replaces the value, not the count.
	tr.Put(9, "a")
	is.Equal(tr.Len(), 3)
	v, _ := tr.Get("a")
	is.Equal(v, 9)
}

func TestClear(t *testing.T) {
	is := is.New(t)

	tr := trie.New[string, int]()
	tr.Put(1, "a")
	tr.Put(2, "a", "b")
	tr.Put(3, "a", "b", "c")

	tr.Clear("a", "b")
	is.Equal(tr.Len(), 2)

	// The cleared node no longer matches exactly...
	_, ok := tr.Get("a", "b")
	is.True(!ok)

	// ...its best-prefix candidates defer to the ancestor...
	v, ok := tr.GetBest("a", "b")
	is.True(ok)
	is.Equal(v, 1)

	// ...and its descendants are untouched.
	v, ok = tr.Get("a", "b", "c")
	is.True(ok)
	is.Equal(v, 3)

	// Clearing an unregistered or empty path changes nothing.
	tr.Clear("zzz")
	tr.Clear()
	is.Equal(tr.Len(), 2)

	// A cleared path can be reused.
	tr.Put(7, "a", "b")
	v, ok = tr.Get("a", "b")
	is.True(ok)
	is.Equal(v, 7)
	is.Equal(tr.Len(), 3)
}

func TestWalk(t *testing.T) {
	is := is.New(t)

	tr := trie.New[string, int]()
	tr.Put(1, "a")
	tr.Put(2, "a", "b")
	tr.Put(3, "c")

	var paths []string
	sum := 0
	tr.Walk(func(keys []string, v int) bool {
		paths = append(paths, strings.Join(keys, "/"))
		sum += v
		return true
	})
	sort.Strings(paths)
	is.Equal(paths, []string{"a", "a/b", "c"})
	is.Equal(sum, 6)
}

func TestWalkStopsEarly(t *testing.T) {
	is := is.New(t)

	tr := trie.New[string, int]()
	tr.Put(1, "a")
	tr.Put(2, "b")
	tr.Put(3, "c")

	visited := 0
	tr.Walk(func([]string, int) bool {
		visited++
		return visited < 2
	})
	is.Equal(visited, 2)
}

func TestIntKeys(t *testing.T) {
	is := is.New(t)

	// Any comparable key type works.
	tr := trie.New[int, string]()
	tr.Put("shallow", 1)
	tr.Put("deep", 1, 2, 3)

	v, ok := tr.GetBest(1, 2)
	is.True(ok)
	is.Equal(v, "shallow")

	v, ok = tr.GetBest(1, 2, 3)
	is.True(ok)
	is.Equal(v, "deep")
}

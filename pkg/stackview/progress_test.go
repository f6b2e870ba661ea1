package stackview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routesOf(keys ...string) []Route {
	out := make([]Route, len(keys))
	for i, k := range keys {
		out[i] = Route{Key: k, RouteName: "screen-" + k}
	}
	return out
}

func TestProgressValue_NilReadsSettled(t *testing.T) {
	var p *ProgressValue
	assert.Equal(t, 1.0, p.Value())
}

func TestProgressValue_Clamps(t *testing.T) {
	p := newProgressValue()
	assert.Equal(t, 0.0, p.Value())

	p.set(1.7)
	assert.Equal(t, 1.0, p.Value())

	p.set(-0.3)
	assert.Equal(t, 0.0, p.Value())

	p.set(0.42)
	assert.Equal(t, 0.42, p.Value())
}

func TestMergeProgress_KeepsInstances(t *testing.T) {
	prev := MergeProgress(nil, routesOf("a", "b"))
	require.Len(t, prev, 2)
	prev["a"].set(1)
	prev["b"].set(0.5)

	next := MergeProgress(prev, routesOf("a", "b", "c"))

	assert.Same(t, prev["a"], next["a"])
	assert.Same(t, prev["b"], next["b"])
	assert.Equal(t, 0.5, next["b"].Value())
	assert.Equal(t, 0.0, next["c"].Value())
	assert.Len(t, prev, 2, "previous mapping must not be modified")
}

func TestMergeProgress_DropsRemovedKeys(t *testing.T) {
	prev := MergeProgress(nil, routesOf("a", "b"))
	next := MergeProgress(prev, routesOf("a"))

	assert.Len(t, next, 1)
	assert.NotContains(t, next, "b")
	assert.Contains(t, prev, "b")
}

func TestProgressStore_IdentityFastPath(t *testing.T) {
	store := NewProgressStore()
	routes := routesOf("a", "b")

	first := store.Sync(routes)
	assert.Equal(t, 2, store.Allocations())

	second := store.Sync(routes)
	assert.Equal(t, 2, store.Allocations())
	assert.Same(t, first["a"], second["a"])

	// Same contents in a fresh list is recomputed but reuses every value.
	third := store.Sync(routesOf("a", "b"))
	assert.Equal(t, 2, store.Allocations())
	assert.Same(t, first["b"], third["b"])
}

func TestProgressStore_CountsNewKeysOnly(t *testing.T) {
	store := NewProgressStore()
	store.Sync(routesOf("a"))
	store.Sync(routesOf("a", "b"))
	store.Sync(routesOf("b"))
	store.Sync(routesOf("b", "a"))

	assert.Equal(t, 3, store.Allocations())
	assert.Equal(t, 2, store.Len())
	assert.Nil(t, store.Get("missing"))
}

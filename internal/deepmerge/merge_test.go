package deepmerge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeNilFragment(t *testing.T) {
	base := map[string]any{"a": 1, "b": map[string]any{"c": "x"}}
	out := Merge(base, nil)
	assert.Equal(t, base, out)
}

func TestMergeRecursesObjects(t *testing.T) {
	base := map[string]any{
		"children": map[string]any{
			"c1": map[string]any{"pickup": "16:00", "dropoff": "08:15"},
			"c2": map[string]any{"pickup": "15:30"},
		},
	}
	frag := map[string]any{
		"children": map[string]any{
			"c1": map[string]any{"pickup": "17:30"},
		},
	}
	out := Merge(base, frag)

	c1 := out["children"].(map[string]any)["c1"].(map[string]any)
	assert.Equal(t, "17:30", c1["pickup"])
	assert.Equal(t, "08:15", c1["dropoff"], "sibling keys must survive")
	c2 := out["children"].(map[string]any)["c2"].(map[string]any)
	assert.Equal(t, "15:30", c2["pickup"])
}

func TestMergeArraysReplaceWholesale(t *testing.T) {
	base := map[string]any{"pack": []any{"a", "b", "c"}}
	frag := map[string]any{"pack": []any{"z"}}
	out := Merge(base, frag)
	assert.Equal(t, []any{"z"}, out["pack"])
}

func TestMergeScalarOverObject(t *testing.T) {
	base := map[string]any{"clothing": map[string]any{"code": "uniform"}}
	frag := map[string]any{"clothing": "none"}
	out := Merge(base, frag)
	assert.Equal(t, "none", out["clothing"])
}

func TestMergeDoesNotMutateBase(t *testing.T) {
	base := map[string]any{
		"a": map[string]any{"b": 1},
		"c": 2,
	}
	frag := map[string]any{
		"a": map[string]any{"b": 9},
		"c": 7,
	}
	out := Merge(base, frag)
	require.Equal(t, 9, out["a"].(map[string]any)["b"])
	assert.Equal(t, 1, base["a"].(map[string]any)["b"])
	assert.Equal(t, 2, base["c"])
}

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMappedTag(t *testing.T) {
	n := NewNormalizer(DefaultTagMappings())

	cat, ok := n.Normalize("dp")
	assert.True(t, ok)
	assert.Equal(t, "Dynamic Programming", cat)

	cat, ok = n.Normalize("dfs and similar")
	assert.True(t, ok)
	assert.Equal(t, "DFS / BFS", cat)
}

func TestNormalizeUnmappedTagFallsBack(t *testing.T) {
	n := NewNormalizer(DefaultTagMappings())

	cat, ok := n.Normalize("some future tag")
	assert.True(t, ok)
	assert.Equal(t, "some future tag", cat)
}

func TestNormalizeSentinelDropped(t *testing.T) {
	n := NewNormalizer(DefaultTagMappings())

	cat, ok := n.Normalize("*special")
	assert.False(t, ok)
	assert.Empty(t, cat)
}

func TestNormalizeExactMatchOnly(t *testing.T) {
	n := NewNormalizer(DefaultTagMappings())

	// No case folding or trimming: near-misses fall back to the raw tag.
	cat, ok := n.Normalize("DP")
	assert.True(t, ok)
	assert.Equal(t, "DP", cat)

	cat, ok = n.Normalize(" dp")
	assert.True(t, ok)
	assert.Equal(t, " dp", cat)
}

func TestNormalizeCustomTable(t *testing.T) {
	n := NewNormalizer([]TagMapping{
		{Tag: "a", Category: "Alpha"},
		{Tag: "b", Category: ""},
	})

	cat, ok := n.Normalize("a")
	assert.True(t, ok)
	assert.Equal(t, "Alpha", cat)

	_, ok = n.Normalize("b")
	assert.False(t, ok)
}

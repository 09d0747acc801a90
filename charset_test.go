package fcgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharSetBasics(t *testing.T) {
	requireFontconfig(t)

	cs, err := NewCharSet()
	require.NoError(t, err)
	defer cs.Destroy()

	require.NoError(t, cs.Add('a'))
	require.NoError(t, cs.Add('b'))
	require.NoError(t, cs.Add('界'))

	assert.True(t, cs.Has('a'))
	assert.True(t, cs.Has('界'))
	assert.False(t, cs.Has('z'))
	assert.Equal(t, 3, cs.Len())

	require.NoError(t, cs.Del('b'))
	assert.False(t, cs.Has('b'))
	assert.Equal(t, 2, cs.Len())
}

func TestCharSetAlgebra(t *testing.T) {
	requireFontconfig(t)

	a, err := NewCharSet()
	require.NoError(t, err)
	defer a.Destroy()
	b, err := NewCharSet()
	require.NoError(t, err)
	defer b.Destroy()

	for _, r := range "abc" {
		require.NoError(t, a.Add(r))
	}
	for _, r := range "bcd" {
		require.NoError(t, b.Add(r))
	}

	union, err := a.Union(b)
	require.NoError(t, err)
	defer union.Destroy()
	assert.Equal(t, 4, union.Len())

	inter, err := a.Intersect(b)
	require.NoError(t, err)
	defer inter.Destroy()
	assert.Equal(t, 2, inter.Len())
	assert.True(t, inter.Has('b'))

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	defer diff.Destroy()
	assert.Equal(t, 1, diff.Len())
	assert.True(t, diff.Has('a'))

	sub, err := inter.IsSubset(union)
	require.NoError(t, err)
	assert.True(t, sub)
}

func TestCharSetMerge(t *testing.T) {
	requireFontconfig(t)

	a, err := NewCharSet()
	require.NoError(t, err)
	defer a.Destroy()
	b, err := NewCharSet()
	require.NoError(t, err)
	defer b.Destroy()

	require.NoError(t, a.Add('x'))
	require.NoError(t, b.Add('y'))

	changed, err := a.Merge(b)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 2, a.Len())

	changed, err = a.Merge(b)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestCharSetCopyIndependent(t *testing.T) {
	requireFontconfig(t)

	a, err := NewCharSet()
	require.NoError(t, err)
	require.NoError(t, a.Add('q'))

	cp, err := a.Copy()
	require.NoError(t, err)
	defer cp.Destroy()
	a.Destroy()

	assert.True(t, cp.Has('q'))
	assert.ErrorIs(t, a.Add('r'), ErrHandleReleased)
}

func TestMatchedFontCoversQuery(t *testing.T) {
	fc := newTestConfig(t)

	query, err := NewPattern()
	require.NoError(t, err)
	defer query.Destroy()
	require.NoError(t, query.AddString(PropFamily, "sans-serif"))
	require.NoError(t, fc.Substitute(query, MatchPattern))
	require.NoError(t, fc.DefaultSubstitute(query))

	font, err := fc.Match(query)
	require.NoError(t, err)
	if font == nil {
		t.Skip("no fonts installed")
	}
	defer font.Destroy()

	cs, err := font.CharSet(PropCharSet, 0)
	require.NoError(t, err)
	defer cs.Destroy()
	assert.True(t, cs.Has('A'), "a sans-serif match should cover ASCII")
}

package fcgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFonts(t *testing.T) {
	fc := newTestConfig(t)

	set, err := fc.ListFonts(nil, nil)
	require.NoError(t, err)
	defer set.Destroy()
	if set.Len() == 0 {
		t.Skip("no fonts installed")
	}

	// Every listed font must carry the requested identifying properties;
	// iterate twice to confirm the set is stable.
	for pass := 0; pass < 2; pass++ {
		for i := 0; i < set.Len(); i++ {
			pat, err := set.Get(i)
			require.NoError(t, err)
			assert.NotEmpty(t, pat.Filename())
			pat.Destroy()
		}
	}
}

func TestListFontsFiltered(t *testing.T) {
	fc := newTestConfig(t)

	all, err := fc.ListFonts(nil, nil)
	require.NoError(t, err)
	defer all.Destroy()
	if all.Len() == 0 {
		t.Skip("no fonts installed")
	}
	first, err := all.Get(0)
	require.NoError(t, err)
	defer first.Destroy()
	family := first.Family()
	require.NotEmpty(t, family)

	query, err := NewPattern()
	require.NoError(t, err)
	defer query.Destroy()
	require.NoError(t, query.AddString(PropFamily, family))

	matched, err := fc.ListFonts(query, nil)
	require.NoError(t, err)
	defer matched.Destroy()
	assert.Greater(t, matched.Len(), 0)
	assert.LessOrEqual(t, matched.Len(), all.Len())
}

func TestFontSetGetOutlivesSet(t *testing.T) {
	fc := newTestConfig(t)

	set, err := fc.ListFonts(nil, nil)
	require.NoError(t, err)
	if set.Len() == 0 {
		set.Destroy()
		t.Skip("no fonts installed")
	}

	pat, err := set.Get(0)
	require.NoError(t, err)
	defer pat.Destroy()
	set.Destroy()

	// The pattern holds its own reference.
	assert.NotEmpty(t, pat.Filename())
}

func TestFontSetAddTransfersOwnership(t *testing.T) {
	requireFontconfig(t)

	set, err := NewFontSet()
	require.NoError(t, err)
	defer set.Destroy()

	pat, err := NewPattern()
	require.NoError(t, err)
	require.NoError(t, pat.AddString(PropFamily, "X"))

	require.NoError(t, set.Add(pat))
	assert.Equal(t, 1, set.Len())

	// The wrapper gave up its reference.
	err = pat.AddString(PropStyle, "Bold")
	assert.ErrorIs(t, err, ErrHandleReleased)

	got, err := set.Get(0)
	require.NoError(t, err)
	defer got.Destroy()
	assert.Equal(t, "X", got.Family())
}

func TestFontSetGetOutOfRange(t *testing.T) {
	requireFontconfig(t)

	set, err := NewFontSet()
	require.NoError(t, err)
	defer set.Destroy()

	_, err = set.Get(0)
	assert.Error(t, err)
	_, err = set.Get(-1)
	assert.Error(t, err)
}

func TestObjectSetRejectsEmptyName(t *testing.T) {
	requireFontconfig(t)

	os, err := NewObjectSet()
	require.NoError(t, err)
	defer os.Destroy()
	assert.ErrorIs(t, os.Add(""), ErrInvalidName)
}

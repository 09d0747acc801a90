package fcgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternAddGet(t *testing.T) {
	requireFontconfig(t)

	pat, err := NewPattern()
	require.NoError(t, err)
	defer pat.Destroy()

	require.NoError(t, pat.AddString(PropFamily, "DejaVu Sans"))
	require.NoError(t, pat.AddString(PropFamily, "Liberation Sans"))
	require.NoError(t, pat.AddInteger(PropWeight, WeightBold))
	require.NoError(t, pat.AddDouble(PropSize, 12.5))
	require.NoError(t, pat.AddBool(PropAntialias, true))

	s, err := pat.GetString(PropFamily, 0)
	require.NoError(t, err)
	assert.Equal(t, "DejaVu Sans", s)

	s, err = pat.GetString(PropFamily, 1)
	require.NoError(t, err)
	assert.Equal(t, "Liberation Sans", s)

	w, err := pat.GetInteger(PropWeight, 0)
	require.NoError(t, err)
	assert.Equal(t, WeightBold, w)

	d, err := pat.GetDouble(PropSize, 0)
	require.NoError(t, err)
	assert.Equal(t, 12.5, d)

	b, err := pat.GetBool(PropAntialias, 0)
	require.NoError(t, err)
	assert.True(t, b)
}

func TestPatternGetErrors(t *testing.T) {
	requireFontconfig(t)

	pat, err := NewPattern()
	require.NoError(t, err)
	defer pat.Destroy()
	require.NoError(t, pat.AddString(PropFamily, "DejaVu Sans"))

	_, err = pat.GetString(PropStyle, 0)
	assert.ErrorIs(t, err, ErrPropertyMissing)

	_, err = pat.GetInteger(PropFamily, 0)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = pat.GetString(PropFamily, 5)
	assert.ErrorIs(t, err, ErrNoID)
}

func TestPatternEmptyName(t *testing.T) {
	requireFontconfig(t)

	pat, err := NewPattern()
	require.NoError(t, err)
	defer pat.Destroy()

	assert.ErrorIs(t, pat.AddString("", "x"), ErrInvalidName)
	assert.ErrorIs(t, pat.AddInteger("", 1), ErrInvalidName)
}

func TestPatternUseAfterDestroy(t *testing.T) {
	requireFontconfig(t)

	pat, err := NewPattern()
	require.NoError(t, err)
	pat.Destroy()
	pat.Destroy() // second destroy is a no-op

	assert.ErrorIs(t, pat.AddString(PropFamily, "x"), ErrHandleReleased)
	_, err = pat.GetString(PropFamily, 0)
	assert.ErrorIs(t, err, ErrHandleReleased)
	_, err = pat.Duplicate()
	assert.ErrorIs(t, err, ErrHandleReleased)
	assert.Equal(t, "", pat.String())
}

// Destroying one pattern must not affect another.
func TestPatternsAreIndependent(t *testing.T) {
	requireFontconfig(t)

	a, err := NewPattern()
	require.NoError(t, err)
	b, err := NewPattern()
	require.NoError(t, err)
	defer b.Destroy()

	require.NoError(t, a.AddString(PropFamily, "A"))
	require.NoError(t, b.AddString(PropFamily, "B"))
	a.Destroy()

	s, err := b.GetString(PropFamily, 0)
	require.NoError(t, err)
	assert.Equal(t, "B", s)
}

func TestPatternDuplicate(t *testing.T) {
	requireFontconfig(t)

	pat, err := NewPattern()
	require.NoError(t, err)
	require.NoError(t, pat.AddString(PropFamily, "DejaVu Sans"))

	dup, err := pat.Duplicate()
	require.NoError(t, err)
	defer dup.Destroy()

	eq, err := pat.Equal(dup)
	require.NoError(t, err)
	assert.True(t, eq)

	// The copy survives destruction of the original.
	pat.Destroy()
	s, err := dup.GetString(PropFamily, 0)
	require.NoError(t, err)
	assert.Equal(t, "DejaVu Sans", s)
}

func TestParsePatternRoundTrip(t *testing.T) {
	requireFontconfig(t)

	pat, err := ParsePattern("DejaVu Sans:style=Bold")
	require.NoError(t, err)
	defer pat.Destroy()

	assert.Equal(t, "DejaVu Sans", pat.Family())
	assert.Equal(t, "Bold", pat.Style())
	assert.Contains(t, pat.String(), "DejaVu Sans")
}

func TestPatternDel(t *testing.T) {
	requireFontconfig(t)

	pat, err := NewPattern()
	require.NoError(t, err)
	defer pat.Destroy()
	require.NoError(t, pat.AddString(PropFamily, "X"))

	present, err := pat.Del(PropFamily)
	require.NoError(t, err)
	assert.True(t, present)

	present, err = pat.Del(PropFamily)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestPatternFilter(t *testing.T) {
	requireFontconfig(t)

	pat, err := NewPattern()
	require.NoError(t, err)
	defer pat.Destroy()
	require.NoError(t, pat.AddString(PropFamily, "X"))
	require.NoError(t, pat.AddString(PropStyle, "Bold"))

	os, err := NewObjectSet(PropFamily)
	require.NoError(t, err)
	defer os.Destroy()

	filtered, err := pat.Filter(os)
	require.NoError(t, err)
	defer filtered.Destroy()

	_, err = filtered.GetString(PropFamily, 0)
	assert.NoError(t, err)
	_, err = filtered.GetString(PropStyle, 0)
	assert.ErrorIs(t, err, ErrPropertyMissing)
}

func TestPatternFormat(t *testing.T) {
	requireFontconfig(t)

	pat, err := ParsePattern("DejaVu Sans:style=Book")
	require.NoError(t, err)
	defer pat.Destroy()

	out, err := pat.Format("%{family}")
	require.NoError(t, err)
	assert.Equal(t, "DejaVu Sans", out)
}

// Strings handed out by getters must stay valid after the pattern dies.
func TestGetStringOutlivesPattern(t *testing.T) {
	requireFontconfig(t)

	pat, err := NewPattern()
	require.NoError(t, err)
	require.NoError(t, pat.AddString(PropFamily, "DejaVu Sans"))
	s, err := pat.GetString(PropFamily, 0)
	require.NoError(t, err)
	pat.Destroy()

	assert.Equal(t, "DejaVu Sans", s)
}

package fcgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSet(t *testing.T) {
	requireFontconfig(t)

	set, err := NewStringSet()
	require.NoError(t, err)
	defer set.Destroy()

	added, err := set.Add("en")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = set.Add("en")
	require.NoError(t, err)
	assert.False(t, added, "duplicate add should report false")

	_, err = set.Add("fr")
	require.NoError(t, err)

	assert.True(t, set.Member("en"))
	assert.False(t, set.Member("de"))

	strs, err := set.Strings()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"en", "fr"}, strs)
}

func TestStringSetUseAfterDestroy(t *testing.T) {
	requireFontconfig(t)

	set, err := NewStringSet()
	require.NoError(t, err)
	set.Destroy()
	set.Destroy()

	_, err = set.Add("x")
	assert.ErrorIs(t, err, ErrHandleReleased)
	assert.False(t, set.Member("x"))
}

func TestMatchedFontLangs(t *testing.T) {
	fc := newTestConfig(t)

	font, err := fc.Find("sans-serif", "")
	require.NoError(t, err)
	if font == nil {
		t.Skip("no fonts installed")
	}

	pat, err := NewPattern()
	require.NoError(t, err)
	defer pat.Destroy()
	require.NoError(t, pat.AddString(PropFamily, "sans-serif"))
	require.NoError(t, fc.Substitute(pat, MatchPattern))
	require.NoError(t, fc.DefaultSubstitute(pat))

	match, err := fc.Match(pat)
	require.NoError(t, err)
	require.NotNil(t, match)
	defer match.Destroy()

	ls, err := match.LangSet(PropLang, 0)
	require.NoError(t, err)
	defer ls.Destroy()

	langs, err := ls.Langs()
	require.NoError(t, err)
	assert.NotEmpty(t, langs)

	ok, err := ls.HasLang("en")
	require.NoError(t, err)
	assert.True(t, ok, "a default sans-serif font should cover English")
}

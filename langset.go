package fcgo

import "github.com/obinnaokechukwu/fcgo/internal/bindings"

// LangSet wraps a native FcLangSet, the set of languages a font supports.
// Obtain one from Pattern.LangSet; release with Destroy.
type LangSet struct {
	ptr uintptr
}

func (l *LangSet) raw() (uintptr, error) {
	if l == nil || l.ptr == 0 {
		return 0, ErrHandleReleased
	}
	return l.ptr, nil
}

// Destroy releases the native set. Safe to call more than once.
func (l *LangSet) Destroy() {
	if l == nil || l.ptr == 0 {
		return
	}
	bindings.FcLangSetDestroy(l.ptr)
	l.ptr = 0
}

// Copy returns an independent copy of the set.
func (l *LangSet) Copy() (*LangSet, error) {
	raw, err := l.raw()
	if err != nil {
		return nil, opErr("LangSet.Copy", err)
	}
	cp := bindings.FcLangSetCopy(raw)
	if cp == 0 {
		return nil, opErr("LangSet.Copy", ErrNullHandle)
	}
	return &LangSet{ptr: cp}, nil
}

// HasLang reports whether the set covers the given RFC 3066 language tag,
// exactly or via a territory-less fallback.
func (l *LangSet) HasLang(lang string) (bool, error) {
	raw, err := l.raw()
	if err != nil {
		return false, opErr("LangSet.HasLang", err)
	}
	// FcLangSetHasLang returns FcLangEqual (0) for exact coverage and
	// FcLangDifferentTerritory (1) for a territory mismatch; both count
	// as supported.
	return bindings.FcLangSetHasLang(raw, lang) <= 1, nil
}

// Langs returns the language tags in the set.
func (l *LangSet) Langs() ([]string, error) {
	raw, err := l.raw()
	if err != nil {
		return nil, opErr("LangSet.Langs", err)
	}
	strs := bindings.FcLangSetGetLangs(raw)
	if strs == 0 {
		return nil, opErr("LangSet.Langs", ErrNullHandle)
	}
	set := &StringSet{ptr: strs}
	defer set.Destroy()
	return set.Strings()
}

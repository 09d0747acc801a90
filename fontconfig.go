package fcgo

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/obinnaokechukwu/fcgo/internal/bindings"
)

// Font identifies a matched font: a display name and the path of the file
// that contains it.
type Font struct {
	Name string
	Path string
}

// FontConfig is the ownership token for the process-wide fontconfig
// configuration. Create one with New and release it with Close.
//
// Multiple FontConfig values may coexist; the native library is brought
// up when the first is created and torn down when the last is closed.
type FontConfig struct {
	mu     sync.Mutex
	cfg    uintptr
	closed bool
}

// The native FcInit/FcFini pair is not reentrant per instance, so bring-up
// and tear-down are refcounted process-wide.
var (
	initMu    sync.Mutex
	initCount int
)

// New initializes fontconfig (loading the library first if needed) and
// returns a handle to the current configuration.
func New() (*FontConfig, error) {
	if err := bindings.Load(); err != nil {
		return nil, opErr("New", err)
	}

	initMu.Lock()
	defer initMu.Unlock()
	if initCount == 0 {
		if bindings.FcInit() != bindings.FcTrue {
			return nil, opErr("New", ErrInitFailed)
		}
		logrus.WithField("version", bindings.FcGetVersion()).
			Debug("fcgo: fontconfig initialized")
	}
	cfg := bindings.FcConfigGetCurrent()
	if cfg == 0 {
		if initCount == 0 {
			bindings.FcFini()
		}
		return nil, opErr("New", ErrInitFailed)
	}
	initCount++
	return &FontConfig{cfg: cfg}, nil
}

// Close releases this handle. When the last open handle is closed the
// native library is finalized. A second Close returns ErrConfigClosed.
func (fc *FontConfig) Close() error {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.closed {
		return opErr("Close", ErrConfigClosed)
	}
	fc.closed = true
	fc.cfg = 0

	initMu.Lock()
	defer initMu.Unlock()
	initCount--
	if initCount == 0 {
		bindings.FcFini()
		logrus.Debug("fcgo: fontconfig finalized")
	}
	return nil
}

// config returns the native configuration handle, or an error if the
// FontConfig has been closed.
func (fc *FontConfig) config() (uintptr, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.closed {
		return 0, ErrConfigClosed
	}
	return fc.cfg, nil
}

// BringUpToDate rereads the configuration and font caches if they have
// changed on disk since initialization.
func (fc *FontConfig) BringUpToDate() error {
	if _, err := fc.config(); err != nil {
		return opErr("BringUpToDate", err)
	}
	if bindings.FcInitBringUptoDate() != bindings.FcTrue {
		return opErr("BringUpToDate", ErrOperationFailed)
	}
	return nil
}

// Substitute applies the configuration's substitution rules of the given
// kind to the pattern, editing it in place.
func (fc *FontConfig) Substitute(pat *Pattern, kind MatchKind) error {
	cfg, err := fc.config()
	if err != nil {
		return opErr("Substitute", err)
	}
	raw, err := pat.raw()
	if err != nil {
		return opErr("Substitute", err)
	}
	if bindings.FcConfigSubstitute(cfg, raw, int32(kind)) != bindings.FcTrue {
		return opErr("Substitute", ErrOutOfMemory)
	}
	return nil
}

// DefaultSubstitute fills in the default values (size, weight, slant, ...)
// a match needs, editing the pattern in place.
func (fc *FontConfig) DefaultSubstitute(pat *Pattern) error {
	if _, err := fc.config(); err != nil {
		return opErr("DefaultSubstitute", err)
	}
	raw, err := pat.raw()
	if err != nil {
		return opErr("DefaultSubstitute", err)
	}
	bindings.FcDefaultSubstitute(raw)
	return nil
}

// Match returns the installed font that best matches the pattern. The
// pattern must already have had Substitute and DefaultSubstitute applied.
// When nothing matches, Match returns (nil, nil).
func (fc *FontConfig) Match(pat *Pattern) (*Pattern, error) {
	cfg, err := fc.config()
	if err != nil {
		return nil, opErr("Match", err)
	}
	raw, err := pat.raw()
	if err != nil {
		return nil, opErr("Match", err)
	}
	var result int32
	out := bindings.FcFontMatch(cfg, raw, &result)
	if out == 0 {
		if result == bindings.FcResultOutOfMemory {
			return nil, opErr("Match", ErrOutOfMemory)
		}
		return nil, nil
	}
	return newOwnedPattern(out), nil
}

// Find resolves a family name and optional style ("" for none) to an
// installed font. It returns (nil, nil) when no font matches, which on a
// normally configured system only happens with an empty font set; the
// matcher otherwise falls back to the closest installed font.
func (fc *FontConfig) Find(family, style string) (*Font, error) {
	pat, err := NewPattern()
	if err != nil {
		return nil, opErr("Find", err)
	}
	defer pat.Destroy()

	if err := pat.AddString(PropFamily, family); err != nil {
		return nil, opErr("Find", err)
	}
	if style != "" {
		if err := pat.AddString(PropStyle, style); err != nil {
			return nil, opErr("Find", err)
		}
	}
	if err := fc.Substitute(pat, MatchPattern); err != nil {
		return nil, err
	}
	if err := fc.DefaultSubstitute(pat); err != nil {
		return nil, err
	}

	match, err := fc.Match(pat)
	if err != nil || match == nil {
		return nil, err
	}
	defer match.Destroy()

	// A match without a file is useless to callers; treat it as a
	// broken installation rather than a soft miss.
	path, err := match.GetString(PropFile, 0)
	if err != nil {
		return nil, opErr("Find", err)
	}

	name := match.FullName()
	if name == "" {
		name = match.Family()
	}
	if name == "" {
		name = family
	}
	return &Font{Name: name, Path: path}, nil
}

// ListFonts returns the installed fonts matching the pattern, restricted
// to the properties named by objects (nil for a default set of identifying
// properties). A nil pattern lists every installed font. The caller owns
// the returned set.
func (fc *FontConfig) ListFonts(pat *Pattern, objects *ObjectSet) (*FontSet, error) {
	cfg, err := fc.config()
	if err != nil {
		return nil, opErr("ListFonts", err)
	}

	var rawPat uintptr
	if pat == nil {
		tmp, err := NewPattern()
		if err != nil {
			return nil, opErr("ListFonts", err)
		}
		defer tmp.Destroy()
		pat = tmp
	}
	if rawPat, err = pat.raw(); err != nil {
		return nil, opErr("ListFonts", err)
	}

	if objects == nil {
		tmp, err := NewObjectSet(PropFamily, PropStyle, PropFile)
		if err != nil {
			return nil, opErr("ListFonts", err)
		}
		defer tmp.Destroy()
		objects = tmp
	}
	rawObj, err := objects.raw()
	if err != nil {
		return nil, opErr("ListFonts", err)
	}

	out := bindings.FcFontList(cfg, rawPat, rawObj)
	if out == 0 {
		return nil, opErr("ListFonts", ErrNullHandle)
	}
	return &FontSet{ptr: out}, nil
}

// Sort returns all installed fonts ordered by how well they match the
// pattern. With trim set, fonts that add no character coverage beyond
// earlier entries are dropped. The caller owns the returned set.
func (fc *FontConfig) Sort(pat *Pattern, trim bool) (*FontSet, error) {
	set, _, err := fc.sort(pat, trim, false)
	return set, err
}

// SortWithCoverage is Sort plus the union of the returned fonts' character
// coverage. The caller owns both the set and the charset.
func (fc *FontConfig) SortWithCoverage(pat *Pattern, trim bool) (*FontSet, *CharSet, error) {
	return fc.sort(pat, trim, true)
}

func (fc *FontConfig) sort(pat *Pattern, trim, wantCoverage bool) (*FontSet, *CharSet, error) {
	cfg, err := fc.config()
	if err != nil {
		return nil, nil, opErr("Sort", err)
	}
	raw, err := pat.raw()
	if err != nil {
		return nil, nil, opErr("Sort", err)
	}

	t := bindings.FcFalse
	if trim {
		t = bindings.FcTrue
	}
	var coverage *uintptr
	var coverageOut uintptr
	if wantCoverage {
		coverage = &coverageOut
	}
	var result int32
	out := bindings.FcFontSort(cfg, raw, t, coverage, &result)
	if out == 0 {
		if err := resultError(result); err != nil {
			return nil, nil, opErr("Sort", err)
		}
		return nil, nil, opErr("Sort", ErrNullHandle)
	}

	set := &FontSet{ptr: out}
	var cs *CharSet
	if wantCoverage && coverageOut != 0 {
		cs = &CharSet{ptr: coverageOut}
	}
	return set, cs, nil
}

// RenderPrepare combines a matched font pattern with the original query
// pattern into one carrying everything needed to render, resolving any
// remaining defaults. The caller owns the returned pattern.
func (fc *FontConfig) RenderPrepare(query, font *Pattern) (*Pattern, error) {
	cfg, err := fc.config()
	if err != nil {
		return nil, opErr("RenderPrepare", err)
	}
	q, err := query.raw()
	if err != nil {
		return nil, opErr("RenderPrepare", err)
	}
	f, err := font.raw()
	if err != nil {
		return nil, opErr("RenderPrepare", err)
	}
	out := bindings.FcFontRenderPrepare(cfg, q, f)
	if out == 0 {
		return nil, opErr("RenderPrepare", ErrNullHandle)
	}
	return newOwnedPattern(out), nil
}

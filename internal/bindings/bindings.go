// Package bindings resolves the fontconfig entry points used by fcgo.
//
// Two mutually exclusive strategies fill the same set of function
// variables: a cgo build links against libfontconfig at build time
// (bindings_cgo.go), while non-cgo builds, or builds with the fcdlopen
// tag, open the shared library at run time with purego and resolve each
// symbol by name (bindings_dlopen.go). Callers only ever see this
// package's surface, never which strategy is active.
package bindings

import (
	"errors"
	"sync"
	"unsafe"
)

// ErrNotLoaded is returned when fontconfig functions are called before Load().
var ErrNotLoaded = errors.New("fcgo: fontconfig library not loaded; call fcgo.New first")

// ErrLibraryNotFound is returned when the fontconfig shared library cannot be found.
var ErrLibraryNotFound = errors.New("fcgo: fontconfig shared library not found")

// ErrSymbolNotFound is returned when a required symbol is absent from the
// loaded library.
var ErrSymbolNotFound = errors.New("fcgo: required symbol missing from fontconfig library")

// FcBool values.
const (
	FcFalse int32 = 0
	FcTrue  int32 = 1
)

// FcResult values.
const (
	FcResultMatch        int32 = 0
	FcResultNoMatch      int32 = 1
	FcResultTypeMismatch int32 = 2
	FcResultNoId         int32 = 3
	FcResultOutOfMemory  int32 = 4
)

// FcMatchKind values.
const (
	FcMatchPattern int32 = 0
	FcMatchFont    int32 = 1
	FcMatchScan    int32 = 2
)

// Function bindings. Both strategies populate these; the native signatures
// come from fontconfig/fontconfig.h.
var (
	// Lifecycle
	FcInit              func() int32
	FcFini              func()
	FcGetVersion        func() int32
	FcInitBringUptoDate func() int32
	FcConfigGetCurrent  func() uintptr

	// Substitution and matching
	FcConfigSubstitute  func(config, pat uintptr, kind int32) int32
	FcDefaultSubstitute func(pat uintptr)
	FcFontMatch         func(config, pat uintptr, result *int32) uintptr
	FcFontSort          func(config, pat uintptr, trim int32, coverage *uintptr, result *int32) uintptr
	FcFontRenderPrepare func(config, pat, font uintptr) uintptr
	FcFontList          func(config, pat, objects uintptr) uintptr

	// Pattern
	FcPatternCreate     func() uintptr
	FcPatternDuplicate  func(pat uintptr) uintptr
	FcPatternReference  func(pat uintptr)
	FcPatternDestroy    func(pat uintptr)
	FcPatternEqual      func(a, b uintptr) int32
	FcPatternAddString  func(pat uintptr, object, value string) int32
	FcPatternAddInteger func(pat uintptr, object string, value int32) int32
	FcPatternAddDouble  func(pat uintptr, object string, value float64) int32
	FcPatternAddBool    func(pat uintptr, object string, value int32) int32
	FcPatternGetString  func(pat uintptr, object string, index int32, value *uintptr) int32
	FcPatternGetInteger func(pat uintptr, object string, index int32, value *int32) int32
	FcPatternGetDouble  func(pat uintptr, object string, index int32, value *float64) int32
	FcPatternGetBool    func(pat uintptr, object string, index int32, value *int32) int32
	FcPatternGetCharSet func(pat uintptr, object string, index int32, value *uintptr) int32
	FcPatternGetLangSet func(pat uintptr, object string, index int32, value *uintptr) int32
	FcPatternDel        func(pat uintptr, object string) int32
	FcPatternFilter     func(pat, objects uintptr) uintptr
	FcPatternFormat     func(pat uintptr, format string) uintptr
	FcPatternPrint      func(pat uintptr)
	FcNameParse         func(name string) uintptr
	FcNameUnparse       func(pat uintptr) uintptr

	// ObjectSet. FcObjectSetAdd stores the name pointer without copying,
	// so additions go through interned process-lifetime strings; use
	// ObjectSetAdd below rather than the raw binding.
	FcObjectSetCreate  func() uintptr
	fcObjectSetAdd     func(objects uintptr, object uintptr) int32
	FcObjectSetDestroy func(objects uintptr)

	// FontSet
	FcFontSetCreate  func() uintptr
	FcFontSetAdd     func(set, pat uintptr) int32
	FcFontSetDestroy func(set uintptr)

	// CharSet
	FcCharSetCreate    func() uintptr
	FcCharSetDestroy   func(set uintptr)
	FcCharSetCopy      func(set uintptr) uintptr
	FcCharSetAddChar   func(set uintptr, ch uint32) int32
	FcCharSetDelChar   func(set uintptr, ch uint32) int32
	FcCharSetHasChar   func(set uintptr, ch uint32) int32
	FcCharSetCount     func(set uintptr) uint32
	FcCharSetEqual     func(a, b uintptr) int32
	FcCharSetUnion     func(a, b uintptr) uintptr
	FcCharSetIntersect func(a, b uintptr) uintptr
	FcCharSetSubtract  func(a, b uintptr) uintptr
	FcCharSetIsSubset  func(a, b uintptr) int32
	FcCharSetMerge     func(dst, src uintptr, changed *int32) int32

	// LangSet
	FcLangSetDestroy  func(set uintptr)
	FcLangSetCopy     func(set uintptr) uintptr
	FcLangSetGetLangs func(set uintptr) uintptr
	FcLangSetHasLang  func(set uintptr, lang string) int32

	// String sets and lists
	FcStrSetCreate  func() uintptr
	FcStrSetDestroy func(set uintptr)
	FcStrSetAdd     func(set uintptr, s string) int32
	FcStrSetMember  func(set uintptr, s string) int32
	FcStrListCreate func(set uintptr) uintptr
	FcStrListNext   func(list uintptr) uintptr
	FcStrListDone   func(list uintptr)
	FcStrFree       func(s uintptr)
)

var (
	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// Load resolves the fontconfig entry points using the strategy selected at
// build time. It is safe to call from multiple goroutines; resolution runs
// at most once per process and every caller observes the same outcome.
func Load() error {
	loadOnce.Do(func() {
		loadErr = resolveSymbols()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

// IsLoaded returns true if the fontconfig entry points have been resolved.
func IsLoaded() bool {
	return loaded
}

// ObjectSetAdd adds a property name to an object set through an interned
// string that outlives the set.
func ObjectSetAdd(objects uintptr, object string) int32 {
	return fcObjectSetAdd(objects, internCString(object))
}

// GoString copies a NUL-terminated native string into Go-owned memory.
// The result remains valid after the native handle that produced the
// string is released.
func GoString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}

// FcFontSet layout: { int nfont; int sfont; FcPattern **fonts; }.
// The fonts pointer sits after the two ints on every supported ABI.
const fontSetFontsOffset = 8

// FontSetCount returns the number of patterns held by a native FcFontSet.
func FontSetCount(set uintptr) int {
	if set == 0 {
		return 0
	}
	return int(*(*int32)(unsafe.Pointer(set)))
}

// FontSetFont returns the raw pattern at index i of a native FcFontSet,
// or 0 if the index is out of range. The returned handle is still owned
// by the font set.
func FontSetFont(set uintptr, i int) uintptr {
	if set == 0 || i < 0 || i >= FontSetCount(set) {
		return 0
	}
	fonts := *(*uintptr)(unsafe.Pointer(set + fontSetFontsOffset))
	if fonts == 0 {
		return 0
	}
	return *(*uintptr)(unsafe.Pointer(fonts + uintptr(i)*unsafe.Sizeof(uintptr(0))))
}

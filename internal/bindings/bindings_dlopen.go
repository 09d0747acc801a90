//go:build !cgo || fcdlopen

package bindings

import (
	"fmt"
	"path/filepath"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"

	"github.com/obinnaokechukwu/fcgo/internal/platform"
)

const libName = "fontconfig"

// Soname versions to try, most specific first.
var soVersions = []int{1}

// resolveSymbols implements the runtime-loading strategy: open the shared
// library, then look up every entry point by name. The library handle is
// deliberately never closed; fontconfig is not designed to be unloaded.
func resolveSymbols() error {
	lib, path, err := openLibrary()
	if err != nil {
		return err
	}
	logrus.WithField("path", path).Debug("fcgo: loaded fontconfig shared library")
	return registerAll(lib)
}

// openLibrary attempts to load libfontconfig by trying versioned names in
// each search path, then letting the system loader resolve bare names.
func openLibrary() (uintptr, string, error) {
	for _, searchPath := range platform.LibrarySearchPaths() {
		for _, ver := range soVersions {
			fullPath := filepath.Join(searchPath, platform.FormatLibraryName(libName, ver))
			if lib, err := tryOpen(fullPath); err == nil {
				return lib, fullPath, nil
			}
		}
		fullPath := filepath.Join(searchPath, platform.FormatLibraryName(libName, 0))
		if lib, err := tryOpen(fullPath); err == nil {
			return lib, fullPath, nil
		}
	}

	// Let the system loader find it.
	for _, ver := range soVersions {
		name := platform.FormatLibraryName(libName, ver)
		if lib, err := tryOpen(name); err == nil {
			return lib, name, nil
		}
	}
	name := platform.FormatLibraryName(libName, 0)
	if lib, err := tryOpen(name); err == nil {
		return lib, name, nil
	}

	return 0, "", fmt.Errorf("%w: %s", ErrLibraryNotFound, libName)
}

func tryOpen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

// registerAll resolves every required symbol. purego reports a missing
// symbol by panicking, which is translated into ErrSymbolNotFound so that
// all callers of Load observe an error instead of a crash.
func registerAll(lib uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSymbolNotFound, r)
		}
	}()

	purego.RegisterLibFunc(&FcInit, lib, "FcInit")
	purego.RegisterLibFunc(&FcFini, lib, "FcFini")
	purego.RegisterLibFunc(&FcGetVersion, lib, "FcGetVersion")
	purego.RegisterLibFunc(&FcInitBringUptoDate, lib, "FcInitBringUptoDate")
	purego.RegisterLibFunc(&FcConfigGetCurrent, lib, "FcConfigGetCurrent")

	purego.RegisterLibFunc(&FcConfigSubstitute, lib, "FcConfigSubstitute")
	purego.RegisterLibFunc(&FcDefaultSubstitute, lib, "FcDefaultSubstitute")
	purego.RegisterLibFunc(&FcFontMatch, lib, "FcFontMatch")
	purego.RegisterLibFunc(&FcFontSort, lib, "FcFontSort")
	purego.RegisterLibFunc(&FcFontRenderPrepare, lib, "FcFontRenderPrepare")
	purego.RegisterLibFunc(&FcFontList, lib, "FcFontList")

	purego.RegisterLibFunc(&FcPatternCreate, lib, "FcPatternCreate")
	purego.RegisterLibFunc(&FcPatternDuplicate, lib, "FcPatternDuplicate")
	purego.RegisterLibFunc(&FcPatternReference, lib, "FcPatternReference")
	purego.RegisterLibFunc(&FcPatternDestroy, lib, "FcPatternDestroy")
	purego.RegisterLibFunc(&FcPatternEqual, lib, "FcPatternEqual")
	purego.RegisterLibFunc(&FcPatternAddString, lib, "FcPatternAddString")
	purego.RegisterLibFunc(&FcPatternAddInteger, lib, "FcPatternAddInteger")
	purego.RegisterLibFunc(&FcPatternAddDouble, lib, "FcPatternAddDouble")
	purego.RegisterLibFunc(&FcPatternAddBool, lib, "FcPatternAddBool")
	purego.RegisterLibFunc(&FcPatternGetString, lib, "FcPatternGetString")
	purego.RegisterLibFunc(&FcPatternGetInteger, lib, "FcPatternGetInteger")
	purego.RegisterLibFunc(&FcPatternGetDouble, lib, "FcPatternGetDouble")
	purego.RegisterLibFunc(&FcPatternGetBool, lib, "FcPatternGetBool")
	purego.RegisterLibFunc(&FcPatternGetCharSet, lib, "FcPatternGetCharSet")
	purego.RegisterLibFunc(&FcPatternGetLangSet, lib, "FcPatternGetLangSet")
	purego.RegisterLibFunc(&FcPatternDel, lib, "FcPatternDel")
	purego.RegisterLibFunc(&FcPatternFilter, lib, "FcPatternFilter")
	purego.RegisterLibFunc(&FcPatternFormat, lib, "FcPatternFormat")
	purego.RegisterLibFunc(&FcPatternPrint, lib, "FcPatternPrint")
	purego.RegisterLibFunc(&FcNameParse, lib, "FcNameParse")
	purego.RegisterLibFunc(&FcNameUnparse, lib, "FcNameUnparse")

	purego.RegisterLibFunc(&FcObjectSetCreate, lib, "FcObjectSetCreate")
	purego.RegisterLibFunc(&fcObjectSetAdd, lib, "FcObjectSetAdd")
	purego.RegisterLibFunc(&FcObjectSetDestroy, lib, "FcObjectSetDestroy")

	purego.RegisterLibFunc(&FcFontSetCreate, lib, "FcFontSetCreate")
	purego.RegisterLibFunc(&FcFontSetAdd, lib, "FcFontSetAdd")
	purego.RegisterLibFunc(&FcFontSetDestroy, lib, "FcFontSetDestroy")

	purego.RegisterLibFunc(&FcCharSetCreate, lib, "FcCharSetCreate")
	purego.RegisterLibFunc(&FcCharSetDestroy, lib, "FcCharSetDestroy")
	purego.RegisterLibFunc(&FcCharSetCopy, lib, "FcCharSetCopy")
	purego.RegisterLibFunc(&FcCharSetAddChar, lib, "FcCharSetAddChar")
	purego.RegisterLibFunc(&FcCharSetDelChar, lib, "FcCharSetDelChar")
	purego.RegisterLibFunc(&FcCharSetHasChar, lib, "FcCharSetHasChar")
	purego.RegisterLibFunc(&FcCharSetCount, lib, "FcCharSetCount")
	purego.RegisterLibFunc(&FcCharSetEqual, lib, "FcCharSetEqual")
	purego.RegisterLibFunc(&FcCharSetUnion, lib, "FcCharSetUnion")
	purego.RegisterLibFunc(&FcCharSetIntersect, lib, "FcCharSetIntersect")
	purego.RegisterLibFunc(&FcCharSetSubtract, lib, "FcCharSetSubtract")
	purego.RegisterLibFunc(&FcCharSetIsSubset, lib, "FcCharSetIsSubset")
	purego.RegisterLibFunc(&FcCharSetMerge, lib, "FcCharSetMerge")

	purego.RegisterLibFunc(&FcLangSetDestroy, lib, "FcLangSetDestroy")
	purego.RegisterLibFunc(&FcLangSetCopy, lib, "FcLangSetCopy")
	purego.RegisterLibFunc(&FcLangSetGetLangs, lib, "FcLangSetGetLangs")
	purego.RegisterLibFunc(&FcLangSetHasLang, lib, "FcLangSetHasLang")

	purego.RegisterLibFunc(&FcStrSetCreate, lib, "FcStrSetCreate")
	purego.RegisterLibFunc(&FcStrSetDestroy, lib, "FcStrSetDestroy")
	purego.RegisterLibFunc(&FcStrSetAdd, lib, "FcStrSetAdd")
	purego.RegisterLibFunc(&FcStrSetMember, lib, "FcStrSetMember")
	purego.RegisterLibFunc(&FcStrListCreate, lib, "FcStrListCreate")
	purego.RegisterLibFunc(&FcStrListNext, lib, "FcStrListNext")
	purego.RegisterLibFunc(&FcStrListDone, lib, "FcStrListDone")
	purego.RegisterLibFunc(&FcStrFree, lib, "FcStrFree")

	return nil
}

var (
	internMu sync.Mutex
	interned = map[string]*byte{}
)

// internCString returns a NUL-terminated copy of s that lives for the rest
// of the process. Needed for FcObjectSetAdd, which keeps the pointer.
func internCString(s string) uintptr {
	internMu.Lock()
	defer internMu.Unlock()
	if p, ok := interned[s]; ok {
		return uintptr(unsafe.Pointer(p))
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	interned[s] = &buf[0]
	return uintptr(unsafe.Pointer(&buf[0]))
}

//go:build cgo && !fcdlopen

package bindings

/*
#cgo pkg-config: fontconfig
#include <stdlib.h>
#include <fontconfig/fontconfig.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/sirupsen/logrus"
)

// resolveSymbols implements the link-time strategy: the dynamic linker has
// already bound the Fc* entry points, so the symbol table is filled with
// thin forwarding closures. pkg-config supplies the include and link flags
// at build time.
func resolveSymbols() error {
	FcInit = func() int32 { return int32(C.FcInit()) }
	FcFini = func() { C.FcFini() }
	FcGetVersion = func() int32 { return int32(C.FcGetVersion()) }
	FcInitBringUptoDate = func() int32 { return int32(C.FcInitBringUptoDate()) }
	FcConfigGetCurrent = func() uintptr {
		return uintptr(unsafe.Pointer(C.FcConfigGetCurrent()))
	}

	FcConfigSubstitute = func(config, pat uintptr, kind int32) int32 {
		return int32(C.FcConfigSubstitute(cfgPtr(config), patPtr(pat), C.FcMatchKind(kind)))
	}
	FcDefaultSubstitute = func(pat uintptr) {
		C.FcDefaultSubstitute(patPtr(pat))
	}
	FcFontMatch = func(config, pat uintptr, result *int32) uintptr {
		var res C.FcResult
		p := C.FcFontMatch(cfgPtr(config), patPtr(pat), &res)
		*result = int32(res)
		return uintptr(unsafe.Pointer(p))
	}
	FcFontSort = func(config, pat uintptr, trim int32, coverage *uintptr, result *int32) uintptr {
		var res C.FcResult
		var csp *C.FcCharSet
		cspp := &csp
		s := C.FcFontSort(cfgPtr(config), patPtr(pat), C.FcBool(trim), cspp, &res)
		*result = int32(res)
		if coverage != nil {
			*coverage = uintptr(unsafe.Pointer(csp))
		}
		return uintptr(unsafe.Pointer(s))
	}
	FcFontRenderPrepare = func(config, pat, font uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.FcFontRenderPrepare(cfgPtr(config), patPtr(pat), patPtr(font))))
	}
	FcFontList = func(config, pat, objects uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.FcFontList(cfgPtr(config), patPtr(pat), osPtr(objects))))
	}

	FcPatternCreate = func() uintptr {
		return uintptr(unsafe.Pointer(C.FcPatternCreate()))
	}
	FcPatternDuplicate = func(pat uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.FcPatternDuplicate(patPtr(pat))))
	}
	FcPatternReference = func(pat uintptr) {
		C.FcPatternReference(patPtr(pat))
	}
	FcPatternDestroy = func(pat uintptr) {
		C.FcPatternDestroy(patPtr(pat))
	}
	FcPatternEqual = func(a, b uintptr) int32 {
		return int32(C.FcPatternEqual(patPtr(a), patPtr(b)))
	}
	FcPatternAddString = func(pat uintptr, object, value string) int32 {
		co := C.CString(object)
		defer C.free(unsafe.Pointer(co))
		cv := C.CString(value)
		defer C.free(unsafe.Pointer(cv))
		return int32(C.FcPatternAddString(patPtr(pat), co, (*C.FcChar8)(unsafe.Pointer(cv))))
	}
	FcPatternAddInteger = func(pat uintptr, object string, value int32) int32 {
		co := C.CString(object)
		defer C.free(unsafe.Pointer(co))
		return int32(C.FcPatternAddInteger(patPtr(pat), co, C.int(value)))
	}
	FcPatternAddDouble = func(pat uintptr, object string, value float64) int32 {
		co := C.CString(object)
		defer C.free(unsafe.Pointer(co))
		return int32(C.FcPatternAddDouble(patPtr(pat), co, C.double(value)))
	}
	FcPatternAddBool = func(pat uintptr, object string, value int32) int32 {
		co := C.CString(object)
		defer C.free(unsafe.Pointer(co))
		return int32(C.FcPatternAddBool(patPtr(pat), co, C.FcBool(value)))
	}
	FcPatternGetString = func(pat uintptr, object string, index int32, value *uintptr) int32 {
		co := C.CString(object)
		defer C.free(unsafe.Pointer(co))
		var out *C.FcChar8
		r := C.FcPatternGetString(patPtr(pat), co, C.int(index), &out)
		*value = uintptr(unsafe.Pointer(out))
		return int32(r)
	}
	FcPatternGetInteger = func(pat uintptr, object string, index int32, value *int32) int32 {
		co := C.CString(object)
		defer C.free(unsafe.Pointer(co))
		var out C.int
		r := C.FcPatternGetInteger(patPtr(pat), co, C.int(index), &out)
		*value = int32(out)
		return int32(r)
	}
	FcPatternGetDouble = func(pat uintptr, object string, index int32, value *float64) int32 {
		co := C.CString(object)
		defer C.free(unsafe.Pointer(co))
		var out C.double
		r := C.FcPatternGetDouble(patPtr(pat), co, C.int(index), &out)
		*value = float64(out)
		return int32(r)
	}
	FcPatternGetBool = func(pat uintptr, object string, index int32, value *int32) int32 {
		co := C.CString(object)
		defer C.free(unsafe.Pointer(co))
		var out C.FcBool
		r := C.FcPatternGetBool(patPtr(pat), co, C.int(index), &out)
		*value = int32(out)
		return int32(r)
	}
	FcPatternGetCharSet = func(pat uintptr, object string, index int32, value *uintptr) int32 {
		co := C.CString(object)
		defer C.free(unsafe.Pointer(co))
		var out *C.FcCharSet
		r := C.FcPatternGetCharSet(patPtr(pat), co, C.int(index), &out)
		*value = uintptr(unsafe.Pointer(out))
		return int32(r)
	}
	FcPatternGetLangSet = func(pat uintptr, object string, index int32, value *uintptr) int32 {
		co := C.CString(object)
		defer C.free(unsafe.Pointer(co))
		var out *C.FcLangSet
		r := C.FcPatternGetLangSet(patPtr(pat), co, C.int(index), &out)
		*value = uintptr(unsafe.Pointer(out))
		return int32(r)
	}
	FcPatternDel = func(pat uintptr, object string) int32 {
		co := C.CString(object)
		defer C.free(unsafe.Pointer(co))
		return int32(C.FcPatternDel(patPtr(pat), co))
	}
	FcPatternFilter = func(pat, objects uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.FcPatternFilter(patPtr(pat), osPtr(objects))))
	}
	FcPatternFormat = func(pat uintptr, format string) uintptr {
		cf := C.CString(format)
		defer C.free(unsafe.Pointer(cf))
		return uintptr(unsafe.Pointer(C.FcPatternFormat(patPtr(pat), (*C.FcChar8)(unsafe.Pointer(cf)))))
	}
	FcPatternPrint = func(pat uintptr) {
		C.FcPatternPrint(patPtr(pat))
	}
	FcNameParse = func(name string) uintptr {
		cn := C.CString(name)
		defer C.free(unsafe.Pointer(cn))
		return uintptr(unsafe.Pointer(C.FcNameParse((*C.FcChar8)(unsafe.Pointer(cn)))))
	}
	FcNameUnparse = func(pat uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.FcNameUnparse(patPtr(pat))))
	}

	FcObjectSetCreate = func() uintptr {
		return uintptr(unsafe.Pointer(C.FcObjectSetCreate()))
	}
	fcObjectSetAdd = func(objects uintptr, object uintptr) int32 {
		return int32(C.FcObjectSetAdd(osPtr(objects), (*C.char)(unsafe.Pointer(object))))
	}
	FcObjectSetDestroy = func(objects uintptr) {
		C.FcObjectSetDestroy(osPtr(objects))
	}

	FcFontSetCreate = func() uintptr {
		return uintptr(unsafe.Pointer(C.FcFontSetCreate()))
	}
	FcFontSetAdd = func(set, pat uintptr) int32 {
		return int32(C.FcFontSetAdd(fsPtr(set), patPtr(pat)))
	}
	FcFontSetDestroy = func(set uintptr) {
		C.FcFontSetDestroy(fsPtr(set))
	}

	FcCharSetCreate = func() uintptr {
		return uintptr(unsafe.Pointer(C.FcCharSetCreate()))
	}
	FcCharSetDestroy = func(set uintptr) {
		C.FcCharSetDestroy(csPtr(set))
	}
	FcCharSetCopy = func(set uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.FcCharSetCopy(csPtr(set))))
	}
	FcCharSetAddChar = func(set uintptr, ch uint32) int32 {
		return int32(C.FcCharSetAddChar(csPtr(set), C.FcChar32(ch)))
	}
	FcCharSetDelChar = func(set uintptr, ch uint32) int32 {
		return int32(C.FcCharSetDelChar(csPtr(set), C.FcChar32(ch)))
	}
	FcCharSetHasChar = func(set uintptr, ch uint32) int32 {
		return int32(C.FcCharSetHasChar(csPtr(set), C.FcChar32(ch)))
	}
	FcCharSetCount = func(set uintptr) uint32 {
		return uint32(C.FcCharSetCount(csPtr(set)))
	}
	FcCharSetEqual = func(a, b uintptr) int32 {
		return int32(C.FcCharSetEqual(csPtr(a), csPtr(b)))
	}
	FcCharSetUnion = func(a, b uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.FcCharSetUnion(csPtr(a), csPtr(b))))
	}
	FcCharSetIntersect = func(a, b uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.FcCharSetIntersect(csPtr(a), csPtr(b))))
	}
	FcCharSetSubtract = func(a, b uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.FcCharSetSubtract(csPtr(a), csPtr(b))))
	}
	FcCharSetIsSubset = func(a, b uintptr) int32 {
		return int32(C.FcCharSetIsSubset(csPtr(a), csPtr(b)))
	}
	FcCharSetMerge = func(dst, src uintptr, changed *int32) int32 {
		var ch C.FcBool
		r := C.FcCharSetMerge(csPtr(dst), csPtr(src), &ch)
		if changed != nil {
			*changed = int32(ch)
		}
		return int32(r)
	}

	FcLangSetDestroy = func(set uintptr) {
		C.FcLangSetDestroy(lsPtr(set))
	}
	FcLangSetCopy = func(set uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.FcLangSetCopy(lsPtr(set))))
	}
	FcLangSetGetLangs = func(set uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.FcLangSetGetLangs(lsPtr(set))))
	}
	FcLangSetHasLang = func(set uintptr, lang string) int32 {
		cl := C.CString(lang)
		defer C.free(unsafe.Pointer(cl))
		return int32(C.FcLangSetHasLang(lsPtr(set), (*C.FcChar8)(unsafe.Pointer(cl))))
	}

	FcStrSetCreate = func() uintptr {
		return uintptr(unsafe.Pointer(C.FcStrSetCreate()))
	}
	FcStrSetDestroy = func(set uintptr) {
		C.FcStrSetDestroy(ssPtr(set))
	}
	FcStrSetAdd = func(set uintptr, s string) int32 {
		cs := C.CString(s)
		defer C.free(unsafe.Pointer(cs))
		return int32(C.FcStrSetAdd(ssPtr(set), (*C.FcChar8)(unsafe.Pointer(cs))))
	}
	FcStrSetMember = func(set uintptr, s string) int32 {
		cs := C.CString(s)
		defer C.free(unsafe.Pointer(cs))
		return int32(C.FcStrSetMember(ssPtr(set), (*C.FcChar8)(unsafe.Pointer(cs))))
	}
	FcStrListCreate = func(set uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.FcStrListCreate(ssPtr(set))))
	}
	FcStrListNext = func(list uintptr) uintptr {
		return uintptr(unsafe.Pointer(C.FcStrListNext((*C.FcStrList)(unsafe.Pointer(list)))))
	}
	FcStrListDone = func(list uintptr) {
		C.FcStrListDone((*C.FcStrList)(unsafe.Pointer(list)))
	}
	FcStrFree = func(s uintptr) {
		C.FcStrFree((*C.FcChar8)(unsafe.Pointer(s)))
	}

	logrus.Debug("fcgo: fontconfig bound at link time")
	return nil
}

func cfgPtr(p uintptr) *C.FcConfig   { return (*C.FcConfig)(unsafe.Pointer(p)) }
func patPtr(p uintptr) *C.FcPattern  { return (*C.FcPattern)(unsafe.Pointer(p)) }
func osPtr(p uintptr) *C.FcObjectSet { return (*C.FcObjectSet)(unsafe.Pointer(p)) }
func fsPtr(p uintptr) *C.FcFontSet   { return (*C.FcFontSet)(unsafe.Pointer(p)) }
func csPtr(p uintptr) *C.FcCharSet   { return (*C.FcCharSet)(unsafe.Pointer(p)) }
func lsPtr(p uintptr) *C.FcLangSet   { return (*C.FcLangSet)(unsafe.Pointer(p)) }
func ssPtr(p uintptr) *C.FcStrSet    { return (*C.FcStrSet)(unsafe.Pointer(p)) }

var (
	internMu sync.Mutex
	interned = map[string]uintptr{}
)

// internCString returns C-allocated memory holding s, kept for the process
// lifetime. FcObjectSetAdd stores the pointer it is given, so the string
// must neither be freed nor live in Go-managed memory.
func internCString(s string) uintptr {
	internMu.Lock()
	defer internMu.Unlock()
	if p, ok := interned[s]; ok {
		return p
	}
	p := uintptr(unsafe.Pointer(C.CString(s)))
	interned[s] = p
	return p
}

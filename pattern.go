package fcgo

import (
	"github.com/obinnaokechukwu/fcgo/internal/bindings"
)

// Pattern wraps a native FcPattern, a set of typed, named properties that
// describes a font either partially (a query) or completely (an installed
// font). The zero value is not usable; obtain patterns from NewPattern,
// ParsePattern, or from matching and listing operations.
//
// Every Pattern owns a reference to its native handle and must be released
// with Destroy exactly once. Using a destroyed Pattern returns
// ErrHandleReleased.
type Pattern struct {
	ptr uintptr
}

// newOwnedPattern wraps a handle whose reference already belongs to us.
func newOwnedPattern(raw uintptr) *Pattern {
	return &Pattern{ptr: raw}
}

// newReferencedPattern wraps a handle owned by someone else, taking an
// additional reference so the wrapper can be destroyed independently.
func newReferencedPattern(raw uintptr) *Pattern {
	bindings.FcPatternReference(raw)
	return &Pattern{ptr: raw}
}

// NewPattern creates an empty pattern.
func NewPattern() (*Pattern, error) {
	if err := bindings.Load(); err != nil {
		return nil, opErr("NewPattern", err)
	}
	raw := bindings.FcPatternCreate()
	if raw == 0 {
		return nil, opErr("NewPattern", ErrNullHandle)
	}
	return newOwnedPattern(raw), nil
}

// ParsePattern converts a fontconfig name string such as
// "DejaVu Sans:style=Bold" into a pattern.
func ParsePattern(name string) (*Pattern, error) {
	if err := bindings.Load(); err != nil {
		return nil, opErr("ParsePattern", err)
	}
	raw := bindings.FcNameParse(name)
	if raw == 0 {
		return nil, opErr("ParsePattern", ErrNullHandle)
	}
	return newOwnedPattern(raw), nil
}

// raw returns the native handle, or an error if it has been released.
func (p *Pattern) raw() (uintptr, error) {
	if p == nil || p.ptr == 0 {
		return 0, ErrHandleReleased
	}
	return p.ptr, nil
}

// consume releases ownership of the native handle to the caller. Used when
// a native call takes over the reference (e.g. FcFontSetAdd).
func (p *Pattern) consume() (uintptr, error) {
	raw, err := p.raw()
	if err != nil {
		return 0, err
	}
	p.ptr = 0
	return raw, nil
}

// Destroy drops this wrapper's reference to the native pattern. The first
// call releases the handle; subsequent calls are no-ops.
func (p *Pattern) Destroy() {
	if p == nil || p.ptr == 0 {
		return
	}
	bindings.FcPatternDestroy(p.ptr)
	p.ptr = 0
}

// Duplicate creates an independent copy of the pattern.
func (p *Pattern) Duplicate() (*Pattern, error) {
	raw, err := p.raw()
	if err != nil {
		return nil, opErr("Pattern.Duplicate", err)
	}
	dup := bindings.FcPatternDuplicate(raw)
	if dup == 0 {
		return nil, opErr("Pattern.Duplicate", ErrNullHandle)
	}
	return newOwnedPattern(dup), nil
}

// Equal reports whether two patterns hold the same properties and values.
func (p *Pattern) Equal(other *Pattern) (bool, error) {
	a, err := p.raw()
	if err != nil {
		return false, opErr("Pattern.Equal", err)
	}
	b, err := other.raw()
	if err != nil {
		return false, opErr("Pattern.Equal", err)
	}
	return bindings.FcPatternEqual(a, b) == bindings.FcTrue, nil
}

// AddString appends a string value to the named property.
func (p *Pattern) AddString(name, value string) error {
	raw, err := p.raw()
	if err != nil {
		return opErr("Pattern.AddString", err)
	}
	if name == "" {
		return opErr("Pattern.AddString", ErrInvalidName)
	}
	if bindings.FcPatternAddString(raw, name, value) != bindings.FcTrue {
		return opErr("Pattern.AddString", ErrOperationFailed)
	}
	return nil
}

// AddInteger appends an integer value to the named property.
func (p *Pattern) AddInteger(name string, value int) error {
	raw, err := p.raw()
	if err != nil {
		return opErr("Pattern.AddInteger", err)
	}
	if name == "" {
		return opErr("Pattern.AddInteger", ErrInvalidName)
	}
	if bindings.FcPatternAddInteger(raw, name, int32(value)) != bindings.FcTrue {
		return opErr("Pattern.AddInteger", ErrOperationFailed)
	}
	return nil
}

// AddDouble appends a floating-point value to the named property.
func (p *Pattern) AddDouble(name string, value float64) error {
	raw, err := p.raw()
	if err != nil {
		return opErr("Pattern.AddDouble", err)
	}
	if name == "" {
		return opErr("Pattern.AddDouble", ErrInvalidName)
	}
	if bindings.FcPatternAddDouble(raw, name, value) != bindings.FcTrue {
		return opErr("Pattern.AddDouble", ErrOperationFailed)
	}
	return nil
}

// AddBool appends a boolean value to the named property.
func (p *Pattern) AddBool(name string, value bool) error {
	raw, err := p.raw()
	if err != nil {
		return opErr("Pattern.AddBool", err)
	}
	if name == "" {
		return opErr("Pattern.AddBool", ErrInvalidName)
	}
	v := bindings.FcFalse
	if value {
		v = bindings.FcTrue
	}
	if bindings.FcPatternAddBool(raw, name, v) != bindings.FcTrue {
		return opErr("Pattern.AddBool", ErrOperationFailed)
	}
	return nil
}

// GetString returns the i'th string value of the named property. The
// returned string is a copy and stays valid after the pattern is destroyed.
// A missing property yields ErrPropertyMissing; a property of a different
// type yields ErrTypeMismatch.
func (p *Pattern) GetString(name string, i int) (string, error) {
	raw, err := p.raw()
	if err != nil {
		return "", opErr("Pattern.GetString", err)
	}
	var out uintptr
	if err := resultError(bindings.FcPatternGetString(raw, name, int32(i), &out)); err != nil {
		return "", opErr("Pattern.GetString", err)
	}
	return bindings.GoString(out), nil
}

// GetInteger returns the i'th integer value of the named property.
func (p *Pattern) GetInteger(name string, i int) (int, error) {
	raw, err := p.raw()
	if err != nil {
		return 0, opErr("Pattern.GetInteger", err)
	}
	var out int32
	if err := resultError(bindings.FcPatternGetInteger(raw, name, int32(i), &out)); err != nil {
		return 0, opErr("Pattern.GetInteger", err)
	}
	return int(out), nil
}

// GetDouble returns the i'th floating-point value of the named property.
func (p *Pattern) GetDouble(name string, i int) (float64, error) {
	raw, err := p.raw()
	if err != nil {
		return 0, opErr("Pattern.GetDouble", err)
	}
	var out float64
	if err := resultError(bindings.FcPatternGetDouble(raw, name, int32(i), &out)); err != nil {
		return 0, opErr("Pattern.GetDouble", err)
	}
	return out, nil
}

// GetBool returns the i'th boolean value of the named property.
func (p *Pattern) GetBool(name string, i int) (bool, error) {
	raw, err := p.raw()
	if err != nil {
		return false, opErr("Pattern.GetBool", err)
	}
	var out int32
	if err := resultError(bindings.FcPatternGetBool(raw, name, int32(i), &out)); err != nil {
		return false, opErr("Pattern.GetBool", err)
	}
	return out == bindings.FcTrue, nil
}

// CharSet returns an independent copy of the i'th charset value of the
// named property. The caller owns the returned set.
func (p *Pattern) CharSet(name string, i int) (*CharSet, error) {
	raw, err := p.raw()
	if err != nil {
		return nil, opErr("Pattern.CharSet", err)
	}
	var out uintptr
	if err := resultError(bindings.FcPatternGetCharSet(raw, name, int32(i), &out)); err != nil {
		return nil, opErr("Pattern.CharSet", err)
	}
	cp := bindings.FcCharSetCopy(out)
	if cp == 0 {
		return nil, opErr("Pattern.CharSet", ErrNullHandle)
	}
	return &CharSet{ptr: cp}, nil
}

// LangSet returns an independent copy of the i'th langset value of the
// named property. The caller owns the returned set.
func (p *Pattern) LangSet(name string, i int) (*LangSet, error) {
	raw, err := p.raw()
	if err != nil {
		return nil, opErr("Pattern.LangSet", err)
	}
	var out uintptr
	if err := resultError(bindings.FcPatternGetLangSet(raw, name, int32(i), &out)); err != nil {
		return nil, opErr("Pattern.LangSet", err)
	}
	cp := bindings.FcLangSetCopy(out)
	if cp == 0 {
		return nil, opErr("Pattern.LangSet", ErrNullHandle)
	}
	return &LangSet{ptr: cp}, nil
}

// Del removes every value of the named property. It reports whether the
// property was present.
func (p *Pattern) Del(name string) (bool, error) {
	raw, err := p.raw()
	if err != nil {
		return false, opErr("Pattern.Del", err)
	}
	return bindings.FcPatternDel(raw, name) == bindings.FcTrue, nil
}

// Filter returns a new pattern holding only the properties named by the
// object set. A nil set copies everything.
func (p *Pattern) Filter(objects *ObjectSet) (*Pattern, error) {
	raw, err := p.raw()
	if err != nil {
		return nil, opErr("Pattern.Filter", err)
	}
	var os uintptr
	if objects != nil {
		if os, err = objects.raw(); err != nil {
			return nil, opErr("Pattern.Filter", err)
		}
	}
	out := bindings.FcPatternFilter(raw, os)
	if out == 0 {
		return nil, opErr("Pattern.Filter", ErrNullHandle)
	}
	return newOwnedPattern(out), nil
}

// Format expands a fontconfig format string such as "%{family}\n" against
// the pattern.
func (p *Pattern) Format(format string) (string, error) {
	raw, err := p.raw()
	if err != nil {
		return "", opErr("Pattern.Format", err)
	}
	out := bindings.FcPatternFormat(raw, format)
	if out == 0 {
		return "", opErr("Pattern.Format", ErrOperationFailed)
	}
	defer bindings.FcStrFree(out)
	return bindings.GoString(out), nil
}

// String renders the pattern in the fontconfig name syntax accepted by
// ParsePattern. A released pattern renders as an empty string.
func (p *Pattern) String() string {
	raw, err := p.raw()
	if err != nil {
		return ""
	}
	out := bindings.FcNameUnparse(raw)
	if out == 0 {
		return ""
	}
	defer bindings.FcStrFree(out)
	return bindings.GoString(out)
}

// Print dumps the pattern to stdout via the native FcPatternPrint, useful
// for debugging.
func (p *Pattern) Print() {
	if raw, err := p.raw(); err == nil {
		bindings.FcPatternPrint(raw)
	}
}

// Family returns the first family name, or "" if the pattern has none.
func (p *Pattern) Family() string {
	s, err := p.GetString(PropFamily, 0)
	if err != nil {
		return ""
	}
	return s
}

// Style returns the first style name, or "" if the pattern has none.
func (p *Pattern) Style() string {
	s, err := p.GetString(PropStyle, 0)
	if err != nil {
		return ""
	}
	return s
}

// Filename returns the font file path, or "" if the pattern has none.
func (p *Pattern) Filename() string {
	s, err := p.GetString(PropFile, 0)
	if err != nil {
		return ""
	}
	return s
}

// FullName returns the first full name, or "" if the pattern has none.
func (p *Pattern) FullName() string {
	s, err := p.GetString(PropFullName, 0)
	if err != nil {
		return ""
	}
	return s
}

// FaceIndex returns the face index within the font file, or 0 if the
// pattern has none.
func (p *Pattern) FaceIndex() int {
	v, err := p.GetInteger(PropIndex, 0)
	if err != nil {
		return 0
	}
	return v
}

// Slant returns the slant value (SlantRoman, SlantItalic, SlantOblique),
// or SlantRoman if the pattern has none.
func (p *Pattern) Slant() int {
	v, err := p.GetInteger(PropSlant, 0)
	if err != nil {
		return SlantRoman
	}
	return v
}

// Weight returns the weight value, or WeightRegular if the pattern has
// none.
func (p *Pattern) Weight() int {
	v, err := p.GetInteger(PropWeight, 0)
	if err != nil {
		return WeightRegular
	}
	return v
}

// Width returns the width value, or WidthNormal if the pattern has none.
func (p *Pattern) Width() int {
	v, err := p.GetInteger(PropWidth, 0)
	if err != nil {
		return WidthNormal
	}
	return v
}

// FontFormat returns the font format name (e.g. "TrueType", "CFF"), or ""
// if the pattern has none.
func (p *Pattern) FontFormat() string {
	s, err := p.GetString(PropFontFormat, 0)
	if err != nil {
		return ""
	}
	return s
}

package fcgo

import "github.com/obinnaokechukwu/fcgo/internal/bindings"

// FontSet holds an ordered collection of font patterns, as produced by
// ListFonts and Sort. The set owns its patterns; Get hands out independent
// references that survive the set. Release with Destroy.
type FontSet struct {
	ptr uintptr
}

// NewFontSet creates an empty font set.
func NewFontSet() (*FontSet, error) {
	if err := bindings.Load(); err != nil {
		return nil, opErr("NewFontSet", err)
	}
	raw := bindings.FcFontSetCreate()
	if raw == 0 {
		return nil, opErr("NewFontSet", ErrNullHandle)
	}
	return &FontSet{ptr: raw}, nil
}

func (s *FontSet) raw() (uintptr, error) {
	if s == nil || s.ptr == 0 {
		return 0, ErrHandleReleased
	}
	return s.ptr, nil
}

// Len returns the number of patterns in the set, or 0 after Destroy.
func (s *FontSet) Len() int {
	raw, err := s.raw()
	if err != nil {
		return 0
	}
	return bindings.FontSetCount(raw)
}

// Get returns the pattern at index i. The returned Pattern holds its own
// reference and must be destroyed by the caller; it stays valid after the
// set itself is destroyed.
func (s *FontSet) Get(i int) (*Pattern, error) {
	raw, err := s.raw()
	if err != nil {
		return nil, opErr("FontSet.Get", err)
	}
	font := bindings.FontSetFont(raw, i)
	if font == 0 {
		return nil, opErr("FontSet.Get", ErrNullHandle)
	}
	return newReferencedPattern(font), nil
}

// Add appends a pattern to the set, transferring ownership: the set now
// holds the pattern's reference and the wrapper is left released.
func (s *FontSet) Add(p *Pattern) error {
	raw, err := s.raw()
	if err != nil {
		return opErr("FontSet.Add", err)
	}
	pat, err := p.consume()
	if err != nil {
		return opErr("FontSet.Add", err)
	}
	if bindings.FcFontSetAdd(raw, pat) != bindings.FcTrue {
		// Ownership did not transfer; give it back to the wrapper.
		p.ptr = pat
		return opErr("FontSet.Add", ErrOutOfMemory)
	}
	return nil
}

// Destroy releases the set and every pattern it owns. Safe to call more
// than once.
func (s *FontSet) Destroy() {
	if s == nil || s.ptr == 0 {
		return
	}
	bindings.FcFontSetDestroy(s.ptr)
	s.ptr = 0
}

package fcgo

import "github.com/obinnaokechukwu/fcgo/internal/bindings"

// CharSet wraps a native FcCharSet, a set of Unicode code points describing
// which characters a font covers. Release with Destroy.
type CharSet struct {
	ptr uintptr
}

// NewCharSet creates an empty charset.
func NewCharSet() (*CharSet, error) {
	if err := bindings.Load(); err != nil {
		return nil, opErr("NewCharSet", err)
	}
	raw := bindings.FcCharSetCreate()
	if raw == 0 {
		return nil, opErr("NewCharSet", ErrNullHandle)
	}
	return &CharSet{ptr: raw}, nil
}

func (c *CharSet) raw() (uintptr, error) {
	if c == nil || c.ptr == 0 {
		return 0, ErrHandleReleased
	}
	return c.ptr, nil
}

// Destroy releases the native set. Safe to call more than once.
func (c *CharSet) Destroy() {
	if c == nil || c.ptr == 0 {
		return
	}
	bindings.FcCharSetDestroy(c.ptr)
	c.ptr = 0
}

// Copy returns an independent copy of the set.
func (c *CharSet) Copy() (*CharSet, error) {
	raw, err := c.raw()
	if err != nil {
		return nil, opErr("CharSet.Copy", err)
	}
	cp := bindings.FcCharSetCopy(raw)
	if cp == 0 {
		return nil, opErr("CharSet.Copy", ErrNullHandle)
	}
	return &CharSet{ptr: cp}, nil
}

// Add inserts a code point.
func (c *CharSet) Add(r rune) error {
	raw, err := c.raw()
	if err != nil {
		return opErr("CharSet.Add", err)
	}
	if bindings.FcCharSetAddChar(raw, uint32(r)) != bindings.FcTrue {
		return opErr("CharSet.Add", ErrOperationFailed)
	}
	return nil
}

// Del removes a code point.
func (c *CharSet) Del(r rune) error {
	raw, err := c.raw()
	if err != nil {
		return opErr("CharSet.Del", err)
	}
	if bindings.FcCharSetDelChar(raw, uint32(r)) != bindings.FcTrue {
		return opErr("CharSet.Del", ErrOperationFailed)
	}
	return nil
}

// Has reports whether the set contains the code point.
func (c *CharSet) Has(r rune) bool {
	raw, err := c.raw()
	if err != nil {
		return false
	}
	return bindings.FcCharSetHasChar(raw, uint32(r)) == bindings.FcTrue
}

// Len returns the number of code points in the set.
func (c *CharSet) Len() int {
	raw, err := c.raw()
	if err != nil {
		return 0
	}
	return int(bindings.FcCharSetCount(raw))
}

// Equal reports whether both sets contain exactly the same code points.
func (c *CharSet) Equal(other *CharSet) (bool, error) {
	a, err := c.raw()
	if err != nil {
		return false, opErr("CharSet.Equal", err)
	}
	b, err := other.raw()
	if err != nil {
		return false, opErr("CharSet.Equal", err)
	}
	return bindings.FcCharSetEqual(a, b) == bindings.FcTrue, nil
}

// Union returns a new set containing every code point in either set.
func (c *CharSet) Union(other *CharSet) (*CharSet, error) {
	return c.combine(other, bindings.FcCharSetUnion, "CharSet.Union")
}

// Intersect returns a new set containing the code points in both sets.
func (c *CharSet) Intersect(other *CharSet) (*CharSet, error) {
	return c.combine(other, bindings.FcCharSetIntersect, "CharSet.Intersect")
}

// Subtract returns a new set containing the code points in c but not in
// other.
func (c *CharSet) Subtract(other *CharSet) (*CharSet, error) {
	return c.combine(other, bindings.FcCharSetSubtract, "CharSet.Subtract")
}

func (c *CharSet) combine(other *CharSet, fn func(a, b uintptr) uintptr, op string) (*CharSet, error) {
	a, err := c.raw()
	if err != nil {
		return nil, opErr(op, err)
	}
	b, err := other.raw()
	if err != nil {
		return nil, opErr(op, err)
	}
	out := fn(a, b)
	if out == 0 {
		return nil, opErr(op, ErrNullHandle)
	}
	return &CharSet{ptr: out}, nil
}

// IsSubset reports whether every code point in c is also in other.
func (c *CharSet) IsSubset(other *CharSet) (bool, error) {
	a, err := c.raw()
	if err != nil {
		return false, opErr("CharSet.IsSubset", err)
	}
	b, err := other.raw()
	if err != nil {
		return false, opErr("CharSet.IsSubset", err)
	}
	return bindings.FcCharSetIsSubset(a, b) == bindings.FcTrue, nil
}

// Merge adds every code point of other into c. It reports whether c
// changed.
func (c *CharSet) Merge(other *CharSet) (bool, error) {
	a, err := c.raw()
	if err != nil {
		return false, opErr("CharSet.Merge", err)
	}
	b, err := other.raw()
	if err != nil {
		return false, opErr("CharSet.Merge", err)
	}
	var changed int32
	if bindings.FcCharSetMerge(a, b, &changed) != bindings.FcTrue {
		return false, opErr("CharSet.Merge", ErrOperationFailed)
	}
	return changed == bindings.FcTrue, nil
}

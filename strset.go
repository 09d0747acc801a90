package fcgo

import "github.com/obinnaokechukwu/fcgo/internal/bindings"

// StringSet wraps a native FcStrSet, an unordered set of strings. Release
// with Destroy.
type StringSet struct {
	ptr uintptr
}

// NewStringSet creates an empty string set.
func NewStringSet() (*StringSet, error) {
	if err := bindings.Load(); err != nil {
		return nil, opErr("NewStringSet", err)
	}
	raw := bindings.FcStrSetCreate()
	if raw == 0 {
		return nil, opErr("NewStringSet", ErrNullHandle)
	}
	return &StringSet{ptr: raw}, nil
}

func (s *StringSet) raw() (uintptr, error) {
	if s == nil || s.ptr == 0 {
		return 0, ErrHandleReleased
	}
	return s.ptr, nil
}

// Destroy releases the native set. Safe to call more than once.
func (s *StringSet) Destroy() {
	if s == nil || s.ptr == 0 {
		return
	}
	bindings.FcStrSetDestroy(s.ptr)
	s.ptr = 0
}

// Add inserts a string. It reports whether the string was newly added.
func (s *StringSet) Add(str string) (bool, error) {
	raw, err := s.raw()
	if err != nil {
		return false, opErr("StringSet.Add", err)
	}
	return bindings.FcStrSetAdd(raw, str) == bindings.FcTrue, nil
}

// Member reports whether the set contains the string.
func (s *StringSet) Member(str string) bool {
	raw, err := s.raw()
	if err != nil {
		return false
	}
	return bindings.FcStrSetMember(raw, str) == bindings.FcTrue
}

// Strings returns the contents of the set as Go strings.
func (s *StringSet) Strings() ([]string, error) {
	raw, err := s.raw()
	if err != nil {
		return nil, opErr("StringSet.Strings", err)
	}
	list := bindings.FcStrListCreate(raw)
	if list == 0 {
		return nil, opErr("StringSet.Strings", ErrNullHandle)
	}
	defer bindings.FcStrListDone(list)

	var out []string
	for {
		p := bindings.FcStrListNext(list)
		if p == 0 {
			return out, nil
		}
		out = append(out, bindings.GoString(p))
	}
}

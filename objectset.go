package fcgo

import "github.com/obinnaokechukwu/fcgo/internal/bindings"

// ObjectSet names the pattern properties an operation should report,
// mirroring the field list given to fc-list. Release with Destroy.
type ObjectSet struct {
	ptr uintptr
}

// NewObjectSet creates an object set holding the given property names.
func NewObjectSet(names ...string) (*ObjectSet, error) {
	if err := bindings.Load(); err != nil {
		return nil, opErr("NewObjectSet", err)
	}
	raw := bindings.FcObjectSetCreate()
	if raw == 0 {
		return nil, opErr("NewObjectSet", ErrNullHandle)
	}
	os := &ObjectSet{ptr: raw}
	for _, name := range names {
		if err := os.Add(name); err != nil {
			os.Destroy()
			return nil, err
		}
	}
	return os, nil
}

func (o *ObjectSet) raw() (uintptr, error) {
	if o == nil || o.ptr == 0 {
		return 0, ErrHandleReleased
	}
	return o.ptr, nil
}

// Add appends a property name to the set.
func (o *ObjectSet) Add(name string) error {
	raw, err := o.raw()
	if err != nil {
		return opErr("ObjectSet.Add", err)
	}
	if name == "" {
		return opErr("ObjectSet.Add", ErrInvalidName)
	}
	if bindings.ObjectSetAdd(raw, name) != bindings.FcTrue {
		return opErr("ObjectSet.Add", ErrOperationFailed)
	}
	return nil
}

// Destroy releases the native set. Safe to call more than once.
func (o *ObjectSet) Destroy() {
	if o == nil || o.ptr == 0 {
		return
	}
	bindings.FcObjectSetDestroy(o.ptr)
	o.ptr = 0
}

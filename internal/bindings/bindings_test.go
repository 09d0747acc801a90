package bindings

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestGoString(t *testing.T) {
	buf := []byte("monospace\x00trailing")
	got := GoString(uintptr(unsafe.Pointer(&buf[0])))
	assert.Equal(t, "monospace", got)
}

func TestGoStringNull(t *testing.T) {
	assert.Equal(t, "", GoString(0))
}

func TestGoStringEmpty(t *testing.T) {
	buf := []byte{0}
	assert.Equal(t, "", GoString(uintptr(unsafe.Pointer(&buf[0]))))
}

func TestFontSetAccessorsNull(t *testing.T) {
	assert.Equal(t, 0, FontSetCount(0))
	assert.Equal(t, uintptr(0), FontSetFont(0, 0))
}

// Load must resolve at most once, and every concurrent first-caller must
// observe the same outcome.
func TestLoadConcurrent(t *testing.T) {
	const n = 16
	errs := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = Load()
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		assert.Equal(t, errs[0], errs[i], "all callers must see the same load outcome")
	}
	if errs[0] == nil {
		assert.True(t, IsLoaded())
	} else {
		assert.False(t, IsLoaded())
		t.Logf("fontconfig not available: %v", errs[0])
	}
}

func TestLoadReplaysOutcome(t *testing.T) {
	first := Load()
	second := Load()
	assert.Equal(t, first, second)
}

func TestInternCStringStable(t *testing.T) {
	a := internCString("family")
	b := internCString("family")
	assert.Equal(t, a, b, "interned pointers must be stable per name")
	assert.NotEqual(t, a, internCString("file"))
}

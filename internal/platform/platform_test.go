package platform

import (
	"runtime"
	"testing"
)

func TestFormatLibraryName(t *testing.T) {
	got := FormatLibraryName("fontconfig", 1)
	switch runtime.GOOS {
	case "darwin":
		if got != "libfontconfig.1.dylib" {
			t.Errorf("FormatLibraryName = %q, want libfontconfig.1.dylib", got)
		}
	case "windows":
		if got != "fontconfig-1.dll" {
			t.Errorf("FormatLibraryName = %q, want fontconfig-1.dll", got)
		}
	default:
		if got != "libfontconfig.so.1" {
			t.Errorf("FormatLibraryName = %q, want libfontconfig.so.1", got)
		}
	}
}

func TestFormatLibraryNameUnversioned(t *testing.T) {
	got := FormatLibraryName("fontconfig", 0)
	if runtime.GOOS == "windows" {
		if got != "fontconfig.dll" {
			t.Errorf("FormatLibraryName = %q, want fontconfig.dll", got)
		}
		return
	}
	want := "libfontconfig" + LibraryExtension
	if got != want {
		t.Errorf("FormatLibraryName = %q, want %q", got, want)
	}
}

func TestLibrarySearchPaths(t *testing.T) {
	paths := LibrarySearchPaths()
	if runtime.GOOS != "windows" && len(paths) == 0 {
		t.Error("LibrarySearchPaths should return at least one path")
	}
}

//go:build windows

package desktop

import (
	"testing"

	"golang.org/x/sys/windows"
)

func TestInstanceHandle(t *testing.T) {
	if h := instanceHandle(currentModule); h == 0 {
		t.Error("instanceHandle(currentModule) = 0, want the executable's module")
	}

	failing := func(module *windows.Handle) error {
		*module = 0xdead
		return windows.ERROR_MOD_NOT_FOUND
	}
	if h := instanceHandle(failing); h != 0 {
		t.Errorf("instanceHandle(failing) = %#x, want 0", h)
	}
}

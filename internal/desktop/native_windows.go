//go:build windows

package desktop

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/sys/windows"

	"github.com/gogpu/gpushell"
)

func nativeHandles(w *glfw.Window) (display, handle uintptr) {
	return instanceHandle(currentModule), uintptr(unsafe.Pointer(w.GetWin32Window()))
}

func currentModule(module *windows.Handle) error {
	return windows.GetModuleHandleEx(0, nil, module)
}

// instanceHandle returns the HINSTANCE reported by lookup, or 0 when the
// lookup fails. The surface falls back to the current module for 0.
func instanceHandle(lookup func(*windows.Handle) error) uintptr {
	var module windows.Handle
	if err := lookup(&module); err != nil {
		gpushell.Logger().Warn("desktop: module handle lookup failed", "err", err)
		return 0
	}
	return uintptr(module)
}

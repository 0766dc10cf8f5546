package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gpushell/window"
)

var keyMap = map[glfw.Key]gpucontext.Key{
	glfw.KeyEscape: gpucontext.KeyEscape,
	glfw.KeySpace:  gpucontext.KeySpace,
}

func mapKey(k glfw.Key) (gpucontext.Key, bool) {
	gk, ok := keyMap[k]
	return gk, ok
}

func mapMouseButton(b glfw.MouseButton) window.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return window.MouseLeft
	case glfw.MouseButtonRight:
		return window.MouseRight
	case glfw.MouseButtonMiddle:
		return window.MouseMiddle
	default:
		return window.MouseOther
	}
}

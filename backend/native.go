//go:build !gles

package backend

import (
	"runtime"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpushell/render"
)

func init() {
	Register(BackendNative, NewNative)
}

// NewNative returns the platform for desktop GPU APIs: Vulkan everywhere,
// Metal on macOS and DirectX 12 on Windows, default device limits, and a
// surface sized in physical pixels.
func NewNative() render.Platform {
	return &platform{
		name:     BackendNative,
		backends: nativeBackends(runtime.GOOS),
		limits:   gputypes.DefaultLimits(),
		present:  unpacedModes,
		scale:    render.PhysicalScale{},
	}
}

func nativeBackends(goos string) []gputypes.Backend {
	switch goos {
	case "darwin":
		return []gputypes.Backend{gputypes.BackendMetal, gputypes.BackendVulkan}
	case "windows":
		return []gputypes.Backend{gputypes.BackendVulkan, gputypes.BackendDX12}
	default:
		return []gputypes.Backend{gputypes.BackendVulkan}
	}
}

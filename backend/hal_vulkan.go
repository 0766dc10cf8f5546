//go:build !gles

package backend

// Vulkan registers with hal via init().
import _ "github.com/gogpu/wgpu/hal/vulkan"

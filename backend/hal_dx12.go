//go:build !gles && windows

package backend

import _ "github.com/gogpu/wgpu/hal/dx12"

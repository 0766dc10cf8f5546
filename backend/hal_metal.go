//go:build !gles && darwin

package backend

import _ "github.com/gogpu/wgpu/hal/metal"

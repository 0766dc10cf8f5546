//go:build gles

package backend

import _ "github.com/gogpu/wgpu/hal/gles"

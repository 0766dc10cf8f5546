// Package backend provides the build-time platform implementations used by
// render.GraphicsContext.
//
// The default build registers the "native" platform: Vulkan (plus Metal on
// macOS and DirectX 12 on Windows), default device limits and surfaces sized
// in physical pixels. Building with the gles tag registers the
// "constrained" platform instead: OpenGL ES, reduced limits and surfaces
// sized in logical pixels.
//
// # Platform Selection
//
//	p, err := backend.Select("")       // highest priority registered
//	p, err := backend.Select("native") // by name
//
// Additional platforms can be registered with Register from an init function.
package backend

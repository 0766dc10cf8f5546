// Package gpushell is a minimal GPU rendering shell built on gogpu/wgpu.
//
// It opens a window, binds a GPU device and presentation surface to it, and
// renders a fixed triangle in response to the platform event loop. The
// interesting part is the surface lifecycle: keeping the surface
// configuration consistent with the window size and scale factor, and
// recovering from transient presentation failures.
//
// # Packages
//
//   - render: GraphicsContext (device, queue, surface, pipeline) and the
//     per-frame render sequence with classified presentation outcomes
//   - app: the event-driven Controller (Uninitialized, Ready, Exiting)
//   - window: events, sizes and the window/event-loop collaborator interfaces
//   - backend: build-time platform capabilities (native or constrained)
//   - shader: the embedded triangle shader artifact
//
// The root package holds process-wide settings: the logger (see [SetLogger])
// and the startup [Config].
//
// # Quick Start
//
//	go run ./cmd/gpushell -control-flow wait -log-level info
package gpushell

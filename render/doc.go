// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render binds a GPU device to a window and draws frames into it.
//
// A GraphicsContext owns the hal device and queue, the presentation surface,
// the surface configuration and one render pipeline. It keeps the surface
// configuration in step with the window size and reports every failed frame
// as a classified outcome instead of recovering on its own.
//
// # Lifecycle
//
//	pending := render.Request(ctx, win, platform, artifact) // instance + surface
//	gc, err := pending.Wait(ctx)                           // adapter + device
//	...
//	gc.Resize(size)   // zero sizes are ignored
//	err = gc.Render() // nil, or *SurfaceUnavailableError
//	...
//	gc.Destroy()
//
// # Presentation outcomes
//
// Render returns a *SurfaceUnavailableError when a frame is not presented.
// Its Reason tells the caller what to do next:
//
//   - SurfaceTimeout, SurfaceOutdated: nothing, the next frame usually works
//   - SurfaceLost: call Resize with Size() to reconfigure the surface
//   - SurfaceOutOfMemory: stop rendering
//
// # Platforms
//
// A Platform supplies the backend list, device limits, present mode
// preference and ScalePolicy. The backend package provides the build-time
// implementations.
package render

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpushell/window"
)

// Platform describes what the build target offers the graphics context:
// which GPU backends to try, how much to ask of the device, how frames are
// paced, and how window sizes map to surface sizes.
//
// Implementations live in the backend package and are selected at build time.
type Platform interface {
	Name() string

	// Backends lists the GPU backends to try, in order.
	Backends() []gputypes.Backend

	// Limits are the device limits requested from the adapter.
	Limits() gputypes.Limits

	// PresentModes lists acceptable present modes, most preferred first.
	PresentModes() []PresentMode

	ScalePolicy() ScalePolicy
}

// ScalePolicy maps the window's physical size to the surface size.
type ScalePolicy interface {
	SurfaceSize(physical window.PhysicalSize, scaleFactor float64) window.PhysicalSize
}

// PhysicalScale configures the surface at the window's physical size.
type PhysicalScale struct{}

// SurfaceSize returns physical unchanged.
func (PhysicalScale) SurfaceSize(physical window.PhysicalSize, _ float64) window.PhysicalSize {
	return physical
}

// LogicalScale configures the surface at the window's logical size, for
// platforms that scale the viewport themselves.
type LogicalScale struct{}

// SurfaceSize divides physical by scaleFactor, truncating toward zero.
// Each dimension is at least 1.
func (LogicalScale) SurfaceSize(physical window.PhysicalSize, scaleFactor float64) window.PhysicalSize {
	if scaleFactor <= 0 {
		return physical
	}
	return window.PhysicalSize{
		Width:  max(uint32(float64(physical.Width)/scaleFactor), 1),
		Height: max(uint32(float64(physical.Height)/scaleFactor), 1),
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// MaxFrameLatency is the number of frames that may be in flight on the GPU.
const MaxFrameLatency = 2

// PresentMode controls how acquired frames are paced against the display.
type PresentMode uint8

const (
	// PresentModeFifo waits for vertical blank. Always supported.
	PresentModeFifo PresentMode = iota
	// PresentModeFifoRelaxed is Fifo that tears when a frame is late.
	PresentModeFifoRelaxed
	// PresentModeImmediate presents without waiting. May tear.
	PresentModeImmediate
	// PresentModeMailbox replaces the queued frame without tearing.
	PresentModeMailbox
)

func (m PresentMode) String() string {
	switch m {
	case PresentModeFifo:
		return "fifo"
	case PresentModeFifoRelaxed:
		return "fifo-relaxed"
	case PresentModeImmediate:
		return "immediate"
	case PresentModeMailbox:
		return "mailbox"
	default:
		return fmt.Sprintf("PresentMode(%d)", uint8(m))
	}
}

// AlphaMode controls how the compositor blends the surface with the desktop.
type AlphaMode uint8

// Alpha modes.
const (
	AlphaModeOpaque AlphaMode = iota
	AlphaModePreMultiplied
	AlphaModePostMultiplied
	AlphaModeInherit
)

// SurfaceCapabilities lists what a surface supports on an adapter.
// Slices are in the order reported by the driver.
type SurfaceCapabilities struct {
	Formats      []gputypes.TextureFormat
	PresentModes []PresentMode
	AlphaModes   []AlphaMode
}

// SurfaceConfig is the configuration applied to a surface before presenting.
type SurfaceConfig struct {
	Format          gputypes.TextureFormat
	Usage           gputypes.TextureUsage
	Width           uint32
	Height          uint32
	PresentMode     PresentMode
	AlphaMode       AlphaMode
	MaxFrameLatency uint32
}

// SurfaceFrame is a texture acquired for one frame.
type SurfaceFrame struct {
	Texture    hal.Texture
	Suboptimal bool

	// Handle is private to the Surface implementation that produced the frame.
	Handle any
}

// Surface is a presentation target bound to a window.
//
// Acquire and Present report failures as *SurfaceUnavailableError.
type Surface interface {
	Capabilities(adapter hal.Adapter) (*SurfaceCapabilities, error)
	Configure(device hal.Device, config *SurfaceConfig) error
	Unconfigure(device hal.Device)
	Acquire() (*SurfaceFrame, error)
	Present(queue hal.Queue, frame *SurfaceFrame) error
	Discard(frame *SurfaceFrame)
	Destroy()
}

// chooseFormat picks the first sRGB format, or the first format when the
// surface offers none.
func chooseFormat(formats []gputypes.TextureFormat) (gputypes.TextureFormat, bool) {
	if len(formats) == 0 {
		return 0, false
	}
	for _, f := range formats {
		if isSRGB(f) {
			return f, true
		}
	}
	return formats[0], true
}

func isSRGB(f gputypes.TextureFormat) bool {
	switch f {
	case gputypes.TextureFormatRGBA8UnormSrgb, gputypes.TextureFormatBGRA8UnormSrgb:
		return true
	}
	return false
}

// choosePresentMode returns the first preferred mode the surface supports.
// Fifo is the fallback because every surface supports it.
func choosePresentMode(preferred, supported []PresentMode) PresentMode {
	for _, p := range preferred {
		for _, s := range supported {
			if p == s {
				return p
			}
		}
	}
	return PresentModeFifo
}

func chooseAlphaMode(supported []AlphaMode) AlphaMode {
	if len(supported) == 0 {
		return AlphaModeOpaque
	}
	return supported[0]
}

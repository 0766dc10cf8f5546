// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/wgpu/hal"
)

// halSurface adapts a hal.Surface created from native window handles.
type halSurface struct {
	surface hal.Surface
}

func createHALSurface(instance hal.Instance, display, window uintptr) (*halSurface, error) {
	s, err := instance.CreateSurface(display, window)
	if err != nil {
		return nil, fmt.Errorf("render: create surface: %w", err)
	}
	return &halSurface{surface: s}, nil
}

func (s *halSurface) Capabilities(adapter hal.Adapter) (*SurfaceCapabilities, error) {
	caps := adapter.SurfaceCapabilities(s.surface)
	if caps == nil || len(caps.Formats) == 0 {
		return nil, ErrNoSurfaceFormat
	}
	out := &SurfaceCapabilities{Formats: caps.Formats}
	for _, m := range caps.PresentModes {
		if pm, ok := presentModeFromHAL(m); ok {
			out.PresentModes = append(out.PresentModes, pm)
		}
	}
	for _, m := range caps.AlphaModes {
		if am, ok := alphaModeFromHAL(m); ok {
			out.AlphaModes = append(out.AlphaModes, am)
		}
	}
	return out, nil
}

func (s *halSurface) Configure(device hal.Device, config *SurfaceConfig) error {
	return s.surface.Configure(device, &hal.SurfaceConfiguration{
		Width:       config.Width,
		Height:      config.Height,
		Format:      config.Format,
		Usage:       config.Usage,
		PresentMode: presentModeToHAL(config.PresentMode),
		AlphaMode:   alphaModeToHAL(config.AlphaMode),
	})
}

func (s *halSurface) Unconfigure(device hal.Device) {
	s.surface.Unconfigure(device)
}

func (s *halSurface) Acquire() (*SurfaceFrame, error) {
	acquired, err := s.surface.AcquireTexture(nil)
	if err != nil {
		return nil, unavailable(classifySurfaceError(err), err)
	}
	return &SurfaceFrame{
		Texture:    acquired.Texture,
		Suboptimal: acquired.Suboptimal,
		Handle:     acquired.Texture,
	}, nil
}

func (s *halSurface) Present(queue hal.Queue, frame *SurfaceFrame) error {
	if err := queue.Present(s.surface, frame.Handle.(hal.SurfaceTexture)); err != nil {
		return unavailable(classifySurfaceError(err), err)
	}
	return nil
}

func (s *halSurface) Discard(frame *SurfaceFrame) {
	s.surface.DiscardTexture(frame.Handle.(hal.SurfaceTexture))
}

func (s *halSurface) Destroy() {
	s.surface.Destroy()
}

// classifySurfaceError maps hal acquisition and presentation errors.
// ErrNotReady means no image is available yet and is retried like a
// timeout. Anything unrecognized is treated as Lost so the caller
// reconfigures.
func classifySurfaceError(err error) SurfaceStatus {
	switch {
	case errors.Is(err, hal.ErrDeviceOutOfMemory):
		return SurfaceOutOfMemory
	case errors.Is(err, hal.ErrTimeout), errors.Is(err, hal.ErrNotReady):
		return SurfaceTimeout
	case errors.Is(err, hal.ErrSurfaceOutdated):
		return SurfaceOutdated
	case errors.Is(err, hal.ErrSurfaceLost):
		return SurfaceLost
	default:
		return SurfaceLost
	}
}

func presentModeToHAL(m PresentMode) hal.PresentMode {
	switch m {
	case PresentModeImmediate:
		return hal.PresentModeImmediate
	case PresentModeMailbox:
		return hal.PresentModeMailbox
	case PresentModeFifoRelaxed:
		return hal.PresentModeFifoRelaxed
	default:
		return hal.PresentModeFifo
	}
}

func presentModeFromHAL(m hal.PresentMode) (PresentMode, bool) {
	switch m {
	case hal.PresentModeImmediate:
		return PresentModeImmediate, true
	case hal.PresentModeMailbox:
		return PresentModeMailbox, true
	case hal.PresentModeFifoRelaxed:
		return PresentModeFifoRelaxed, true
	case hal.PresentModeFifo:
		return PresentModeFifo, true
	}
	return 0, false
}

func alphaModeToHAL(m AlphaMode) hal.CompositeAlphaMode {
	switch m {
	case AlphaModePreMultiplied:
		return hal.CompositeAlphaModePremultiplied
	case AlphaModePostMultiplied:
		return hal.CompositeAlphaModePostmultiplied
	case AlphaModeInherit:
		return hal.CompositeAlphaModeInherit
	default:
		return hal.CompositeAlphaModeOpaque
	}
}

func alphaModeFromHAL(m hal.CompositeAlphaMode) (AlphaMode, bool) {
	switch m {
	case hal.CompositeAlphaModeOpaque:
		return AlphaModeOpaque, true
	case hal.CompositeAlphaModePremultiplied:
		return AlphaModePreMultiplied, true
	case hal.CompositeAlphaModePostmultiplied:
		return AlphaModePostMultiplied, true
	case hal.CompositeAlphaModeInherit:
		return AlphaModeInherit, true
	}
	return 0, false
}

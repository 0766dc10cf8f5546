// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBackend is returned when none of the platform's GPU backends
	// is compiled in or can create an instance.
	ErrNoBackend = errors.New("render: no usable GPU backend")

	// ErrNoAdapter is returned when no adapter can present to the surface.
	ErrNoAdapter = errors.New("render: no compatible GPU adapter")

	// ErrNoSurfaceFormat is returned when the surface reports no formats.
	ErrNoSurfaceFormat = errors.New("render: surface has no supported format")

	// ErrDeviceLost is returned when the surface can no longer be configured.
	ErrDeviceLost = errors.New("render: device lost")

	// ErrNotConfigured is reported by Render before a positive size was applied.
	ErrNotConfigured = errors.New("render: surface not configured")

	// ErrDestroyed is returned by operations on a destroyed GraphicsContext.
	ErrDestroyed = errors.New("render: graphics context destroyed")
)

// SurfaceStatus classifies why a frame could not be presented.
type SurfaceStatus uint8

const (
	// SurfaceTimeout means no texture became available in time.
	SurfaceTimeout SurfaceStatus = iota + 1
	// SurfaceOutdated means the surface no longer matches the window.
	SurfaceOutdated
	// SurfaceLost means the surface must be reconfigured before use.
	SurfaceLost
	// SurfaceOutOfMemory means the device ran out of memory.
	SurfaceOutOfMemory
)

func (s SurfaceStatus) String() string {
	switch s {
	case SurfaceTimeout:
		return "timeout"
	case SurfaceOutdated:
		return "outdated"
	case SurfaceLost:
		return "lost"
	case SurfaceOutOfMemory:
		return "out of memory"
	default:
		return fmt.Sprintf("SurfaceStatus(%d)", uint8(s))
	}
}

// SurfaceUnavailableError is returned by Render when a frame was not presented.
type SurfaceUnavailableError struct {
	Reason SurfaceStatus
	Err    error
}

func (e *SurfaceUnavailableError) Error() string {
	if e.Err == nil {
		return "render: surface unavailable: " + e.Reason.String()
	}
	return "render: surface unavailable: " + e.Reason.String() + ": " + e.Err.Error()
}

func (e *SurfaceUnavailableError) Unwrap() error { return e.Err }

// SurfaceReason reports the classification carried by err, if any.
func SurfaceReason(err error) (SurfaceStatus, bool) {
	var se *SurfaceUnavailableError
	if errors.As(err, &se) {
		return se.Reason, true
	}
	return 0, false
}

func unavailable(reason SurfaceStatus, err error) error {
	return &SurfaceUnavailableError{Reason: reason, Err: err}
}

//go:build gles

package backend

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpushell/render"
)

func init() {
	Register(BackendConstrained, NewConstrained)
}

// NewConstrained returns the platform for sandboxed, GL-class devices.
// Device limits are reduced to what such devices guarantee, and the
// surface is sized in logical pixels because the host scales the viewport.
func NewConstrained() render.Platform {
	return &platform{
		name:     BackendConstrained,
		backends: []gputypes.Backend{gputypes.BackendGL},
		limits:   constrainedLimits(),
		present:  unpacedModes,
		scale:    render.LogicalScale{},
	}
}

func constrainedLimits() gputypes.Limits {
	l := gputypes.DefaultLimits()
	l.MaxTextureDimension1D = 2048
	l.MaxTextureDimension2D = 2048
	l.MaxTextureDimension3D = 256
	l.MaxBindGroups = 4
	return l
}

package backend

import (
	"errors"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpushell/render"
)

// ErrBackendNotAvailable is returned when a requested backend is not registered.
var ErrBackendNotAvailable = errors.New("backend: not available")

// Backend names.
const (
	BackendNative      = "native"
	BackendConstrained = "constrained"
)

// platform is the render.Platform shared by the build-time backends.
type platform struct {
	name     string
	backends []gputypes.Backend
	limits   gputypes.Limits
	present  []render.PresentMode
	scale    render.ScalePolicy
}

func (p *platform) Name() string                       { return p.name }
func (p *platform) Backends() []gputypes.Backend       { return p.backends }
func (p *platform) Limits() gputypes.Limits            { return p.limits }
func (p *platform) PresentModes() []render.PresentMode { return p.present }
func (p *platform) ScalePolicy() render.ScalePolicy    { return p.scale }

// unpacedModes never wait for vertical blank. Fifo is the fallback
// render applies when neither is supported.
var unpacedModes = []render.PresentMode{render.PresentModeImmediate, render.PresentModeMailbox}

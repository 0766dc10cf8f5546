// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gpushell"
	"github.com/gogpu/gpushell/shader"
	"github.com/gogpu/gpushell/window"
)

// Window is the part of a window handle the graphics context reads.
type Window interface {
	InnerSize() window.PhysicalSize
	ScaleFactor() float64
	SurfaceHandles() (display, window uintptr)
}

// GraphicsContext is one GPU binding to a window: device, queue,
// presentation surface, surface configuration and the triangle pipeline.
//
// All methods must be called from the event-loop thread.
type GraphicsContext struct {
	window   Window
	platform Platform
	gpu      binding

	config     SurfaceConfig
	size       window.PhysicalSize
	configured bool

	pipeline *trianglePipeline
	frames   *frameRing

	// passHook replaces BeginRenderPass when set. Nil outside tests.
	passHook func(hal.CommandEncoder, *hal.RenderPassDescriptor) hal.RenderPassEncoder

	destroyed bool
}

// Pending is a graphics context under construction.
type Pending struct {
	done     chan struct{}
	win      Window
	platform Platform
	artifact *shader.Artifact
	gpu      binding
	err      error
}

// Request starts building a graphics context for w.
//
// The instance and surface are created on the calling thread, which must be
// the thread that owns w. Adapter and device acquisition continue in the
// background; Wait completes construction.
func Request(ctx context.Context, w Window, platform Platform, artifact *shader.Artifact) *Pending {
	p := &Pending{
		done:     make(chan struct{}),
		win:      w,
		platform: platform,
		artifact: artifact,
	}

	instance, backend, err := createInstance(platform.Backends())
	if err != nil {
		p.err = err
		close(p.done)
		return p
	}
	p.gpu.instance = instance

	display, handle := w.SurfaceHandles()
	surface, err := createHALSurface(instance, display, handle)
	if err != nil {
		p.gpu.release()
		p.err = err
		close(p.done)
		return p
	}
	p.gpu.surface = surface
	gpushell.Logger().Info("render: surface created", "platform", platform.Name(), "backend", backend)

	limits := platform.Limits()
	go func() {
		defer close(p.done)
		if err := openDevice(ctx, &p.gpu, surface.surface, limits); err != nil {
			p.gpu.release()
			p.err = err
		}
	}()
	return p
}

// Wait blocks until the device handshake finishes, then builds the pipeline
// and configures the surface. It must be called on the same thread as Request.
//
// If ctx ends first, the partially built binding is released in the
// background and ctx's error is returned.
func (p *Pending) Wait(ctx context.Context) (*GraphicsContext, error) {
	select {
	case <-p.done:
	case <-ctx.Done():
		go func() {
			<-p.done
			p.gpu.release()
		}()
		return nil, ctx.Err()
	}
	if p.err != nil {
		return nil, p.err
	}
	gc, err := newGraphicsContext(p.gpu, p.win, p.platform, p.artifact)
	if err != nil {
		p.gpu.release()
		return nil, err
	}
	return gc, nil
}

// New builds a graphics context for w, blocking until the GPU is ready.
func New(ctx context.Context, w Window, platform Platform, artifact *shader.Artifact) (*GraphicsContext, error) {
	return Request(ctx, w, platform, artifact).Wait(ctx)
}

func newGraphicsContext(gpu binding, w Window, platform Platform, artifact *shader.Artifact) (*GraphicsContext, error) {
	caps, err := gpu.surface.Capabilities(gpu.adapter)
	if err != nil {
		return nil, err
	}
	format, ok := chooseFormat(caps.Formats)
	if !ok {
		return nil, ErrNoSurfaceFormat
	}

	gc := &GraphicsContext{
		window:   w,
		platform: platform,
		gpu:      gpu,
		config: SurfaceConfig{
			Format:          format,
			Usage:           gputypes.TextureUsageRenderAttachment,
			PresentMode:     choosePresentMode(platform.PresentModes(), caps.PresentModes),
			AlphaMode:       chooseAlphaMode(caps.AlphaModes),
			MaxFrameLatency: MaxFrameLatency,
		},
	}

	gc.pipeline, err = newTrianglePipeline(gpu.device, artifact, format)
	if err != nil {
		return nil, err
	}
	gc.frames, err = newFrameRing(gpu.device, MaxFrameLatency)
	if err != nil {
		gc.pipeline.destroy()
		return nil, err
	}

	size := w.InnerSize()
	if err := gc.Resize(size); err != nil {
		gc.frames.destroy()
		gc.pipeline.destroy()
		return nil, err
	}
	gpushell.Logger().Info("render: graphics context ready",
		"format", format, "present_mode", gc.config.PresentMode,
		"width", size.Width, "height", size.Height)
	return gc, nil
}

// Resize reconfigures the surface for a new physical window size.
//
// A size with a zero dimension is ignored and the surface keeps its last
// configuration. The configured size is size mapped through the platform's
// ScalePolicy. An error means the device can no longer configure the
// surface and is not recoverable.
func (gc *GraphicsContext) Resize(size window.PhysicalSize) error {
	if gc.destroyed {
		return ErrDestroyed
	}
	if size.IsZero() {
		return nil
	}
	target := gc.platform.ScalePolicy().SurfaceSize(size, gc.window.ScaleFactor())

	// Views of the old surface textures must not outlive the configuration.
	if err := gc.frames.drain(); err != nil {
		gpushell.Logger().Warn("render: drain before resize", "err", err)
	}

	gc.size = size
	gc.config.Width = target.Width
	gc.config.Height = target.Height
	if err := gc.gpu.surface.Configure(gc.gpu.device, &gc.config); err != nil {
		gc.configured = false
		return fmt.Errorf("%w: configure surface %dx%d: %w", ErrDeviceLost, target.Width, target.Height, err)
	}
	gc.configured = true
	gpushell.Logger().Debug("render: surface configured",
		"width", target.Width, "height", target.Height)
	return nil
}

// Update advances per-frame state. It currently does nothing.
func (gc *GraphicsContext) Update() {}

// Input offers an input event to the context. It reports whether the event
// was consumed; no events are consumed yet.
func (gc *GraphicsContext) Input(window.Event) bool { return false }

// Size returns the last physical size applied with Resize.
func (gc *GraphicsContext) Size() window.PhysicalSize { return gc.size }

// Config returns the current surface configuration.
func (gc *GraphicsContext) Config() SurfaceConfig { return gc.config }

// SurfaceFormat returns the texture format frames are rendered in.
func (gc *GraphicsContext) SurfaceFormat() gputypes.TextureFormat { return gc.config.Format }

// HalDevice returns the hal.Device so other gogpu libraries can share it.
func (gc *GraphicsContext) HalDevice() any { return gc.gpu.device }

// HalQueue returns the hal.Queue so other gogpu libraries can share it.
func (gc *GraphicsContext) HalQueue() any { return gc.gpu.queue }

// AdapterName returns the name of the adapter the device was opened on.
func (gc *GraphicsContext) AdapterName() string { return gc.gpu.adapterName }

// Destroy waits for in-flight frames and releases all GPU objects in
// reverse creation order. It is safe to call more than once.
func (gc *GraphicsContext) Destroy() {
	if gc.destroyed {
		return
	}
	gc.destroyed = true
	gc.frames.destroy()
	gc.pipeline.destroy()
	if gc.configured {
		gc.gpu.surface.Unconfigure(gc.gpu.device)
		gc.configured = false
	}
	gc.gpu.release()
}

// errNilFrame guards against Surface implementations returning nothing.
var errNilFrame = errors.New("render: surface returned no frame")

//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/gpushell/shader"
	"github.com/gogpu/gpushell/window"
)

// testWindow is a fixed-size window.
type testWindow struct {
	size  window.PhysicalSize
	scale float64
}

func (w *testWindow) InnerSize() window.PhysicalSize { return w.size }
func (w *testWindow) ScaleFactor() float64           { return w.scale }
func (w *testWindow) SurfaceHandles() (uintptr, uintptr) {
	return 0, 0
}

// testPlatform is a Platform with a selectable scale policy.
type testPlatform struct {
	policy ScalePolicy
}

func (testPlatform) Name() string                 { return "test" }
func (testPlatform) Backends() []gputypes.Backend { return nil }
func (testPlatform) Limits() gputypes.Limits      { return gputypes.DefaultLimits() }
func (testPlatform) PresentModes() []PresentMode  { return []PresentMode{PresentModeImmediate, PresentModeMailbox} }
func (p testPlatform) ScalePolicy() ScalePolicy   { return p.policy }

// fakeSurface hands out noop textures and records configuration calls.
type fakeSurface struct {
	device hal.Device
	caps   SurfaceCapabilities

	configs      []SurfaceConfig
	configureErr error
	unconfigured int

	// acquireErrs are returned by successive Acquire calls before
	// falling back to real textures.
	acquireErrs []error
	acquired    int
	presented   int
	discarded   int
	destroyed   bool
}

func (s *fakeSurface) Capabilities(hal.Adapter) (*SurfaceCapabilities, error) {
	if len(s.caps.Formats) == 0 {
		return nil, ErrNoSurfaceFormat
	}
	c := s.caps
	return &c, nil
}

func (s *fakeSurface) Configure(_ hal.Device, config *SurfaceConfig) error {
	if s.configureErr != nil {
		return s.configureErr
	}
	s.configs = append(s.configs, *config)
	return nil
}

func (s *fakeSurface) Unconfigure(hal.Device) { s.unconfigured++ }

func (s *fakeSurface) Acquire() (*SurfaceFrame, error) {
	if len(s.acquireErrs) > 0 {
		err := s.acquireErrs[0]
		s.acquireErrs = s.acquireErrs[1:]
		return nil, err
	}
	cfg := s.configs[len(s.configs)-1]
	tex, err := s.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "fake_surface_texture",
		Size:          hal.Extent3D{Width: cfg.Width, Height: cfg.Height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        cfg.Format,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return nil, unavailable(SurfaceLost, err)
	}
	s.acquired++
	return &SurfaceFrame{Texture: tex}, nil
}

func (s *fakeSurface) Present(_ hal.Queue, frame *SurfaceFrame) error {
	s.presented++
	s.device.DestroyTexture(frame.Texture)
	return nil
}

func (s *fakeSurface) Discard(frame *SurfaceFrame) {
	s.discarded++
	s.device.DestroyTexture(frame.Texture)
}

func (s *fakeSurface) Destroy() { s.destroyed = true }

// countingQueue counts submissions and can inject a submit failure.
type countingQueue struct {
	hal.Queue
	submits   int
	submitErr error
}

func (q *countingQueue) Submit(cmds []hal.CommandBuffer, fence hal.Fence, value uint64) error {
	if q.submitErr != nil {
		return q.submitErr
	}
	q.submits++
	return q.Queue.Submit(cmds, fence, value)
}

// beginFailDevice hands out encoders whose BeginEncoding fails.
type beginFailDevice struct {
	hal.Device
	encoders []*beginFailEncoder
}

func (d *beginFailDevice) CreateCommandEncoder(desc *hal.CommandEncoderDescriptor) (hal.CommandEncoder, error) {
	enc, err := d.Device.CreateCommandEncoder(desc)
	if err != nil {
		return nil, err
	}
	e := &beginFailEncoder{CommandEncoder: enc}
	d.encoders = append(d.encoders, e)
	return e, nil
}

type beginFailEncoder struct {
	hal.CommandEncoder
	discarded int
}

func (e *beginFailEncoder) BeginEncoding(string) error { return errInjected }

func (e *beginFailEncoder) DiscardEncoding() {
	e.discarded++
	e.CommandEncoder.DiscardEncoding()
}

// recordingPass records the commands of a render pass.
type recordingPass struct {
	hal.RenderPassEncoder
	pipelines []hal.RenderPipeline
	draws     [][4]uint32
	ended     bool
}

func (p *recordingPass) SetPipeline(pipeline hal.RenderPipeline) {
	p.pipelines = append(p.pipelines, pipeline)
	p.RenderPassEncoder.SetPipeline(pipeline)
}

func (p *recordingPass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	p.draws = append(p.draws, [4]uint32{vertexCount, instanceCount, firstVertex, firstInstance})
	p.RenderPassEncoder.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
}

func (p *recordingPass) End() {
	p.ended = true
	p.RenderPassEncoder.End()
}

// passRecorder installs itself as the context's pass hook.
type passRecorder struct {
	descs  []hal.RenderPassDescriptor
	passes []*recordingPass
}

func (r *passRecorder) install(gc *GraphicsContext) {
	gc.passHook = func(enc hal.CommandEncoder, desc *hal.RenderPassDescriptor) hal.RenderPassEncoder {
		r.descs = append(r.descs, *desc)
		p := &recordingPass{RenderPassEncoder: enc.BeginRenderPass(desc)}
		r.passes = append(r.passes, p)
		return p
	}
}

type fixture struct {
	gc      *GraphicsContext
	surface *fakeSurface
	queue   *countingQueue
	window  *testWindow
}

type fixtureOptions struct {
	size    window.PhysicalSize
	scale   float64
	policy  ScalePolicy
	formats []gputypes.TextureFormat
	modes   []PresentMode
	alpha   []AlphaMode
}

func defaultFixtureOptions() fixtureOptions {
	return fixtureOptions{
		size:    window.PhysicalSize{Width: 500, Height: 400},
		scale:   1,
		policy:  PhysicalScale{},
		formats: []gputypes.TextureFormat{gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb},
		modes:   []PresentMode{PresentModeFifo, PresentModeImmediate},
		alpha:   []AlphaMode{AlphaModeOpaque, AlphaModePreMultiplied},
	}
}

// newNoopBinding opens a noop device and wraps it with a fake surface.
func newNoopBinding(t *testing.T, opts fixtureOptions) (binding, *fakeSurface, *countingQueue) {
	t.Helper()
	instance, err := noop.API{}.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	surface := &fakeSurface{
		device: openDev.Device,
		caps: SurfaceCapabilities{
			Formats:      opts.formats,
			PresentModes: opts.modes,
			AlphaModes:   opts.alpha,
		},
	}
	queue := &countingQueue{Queue: openDev.Queue}
	return binding{
		instance:    instance,
		adapter:     adapters[0].Adapter,
		device:      openDev.Device,
		queue:       queue,
		surface:     surface,
		adapterName: "noop",
	}, surface, queue
}

func newFixture(t *testing.T, opts fixtureOptions) *fixture {
	t.Helper()
	gpu, surface, queue := newNoopBinding(t, opts)
	artifact, err := shader.Triangle()
	if err != nil {
		gpu.release()
		t.Fatalf("shader.Triangle() = %v", err)
	}
	w := &testWindow{size: opts.size, scale: opts.scale}
	gc, err := newGraphicsContext(gpu, w, testPlatform{policy: opts.policy}, artifact)
	if err != nil {
		gpu.release()
		t.Fatalf("newGraphicsContext() = %v", err)
	}
	t.Cleanup(gc.Destroy)
	return &fixture{gc: gc, surface: surface, queue: queue, window: w}
}

func wantReason(t *testing.T, err error, want SurfaceStatus) {
	t.Helper()
	got, ok := SurfaceReason(err)
	if !ok {
		t.Fatalf("error %v is not a SurfaceUnavailableError", err)
	}
	if got != want {
		t.Errorf("reason = %v, want %v", got, want)
	}
}

var errInjected = errors.New("injected")

//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpushell/shader"
)

func mustTriangle(t *testing.T) *shader.Artifact {
	t.Helper()
	a, err := shader.Triangle()
	if err != nil {
		t.Fatalf("shader.Triangle() = %v", err)
	}
	return a
}

func TestRenderSubmitsOneFrame(t *testing.T) {
	f := newFixture(t, defaultFixtureOptions())
	var rec passRecorder
	rec.install(f.gc)

	if err := f.gc.Render(); err != nil {
		t.Fatalf("Render() = %v", err)
	}

	if len(rec.descs) != 1 {
		t.Fatalf("render passes = %d, want 1", len(rec.descs))
	}
	atts := rec.descs[0].ColorAttachments
	if len(atts) != 1 {
		t.Fatalf("color attachments = %d, want 1", len(atts))
	}
	a := atts[0]
	if a.LoadOp != gputypes.LoadOpClear || a.StoreOp != gputypes.StoreOpStore {
		t.Errorf("load/store = %v/%v, want clear/store", a.LoadOp, a.StoreOp)
	}
	want := gputypes.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}
	if a.ClearValue != want {
		t.Errorf("ClearValue = %+v, want %+v", a.ClearValue, want)
	}

	pass := rec.passes[0]
	if len(pass.pipelines) != 1 || pass.pipelines[0] != f.gc.pipeline.pipeline {
		t.Errorf("SetPipeline calls = %d, want 1 with the triangle pipeline", len(pass.pipelines))
	}
	if len(pass.draws) != 1 || pass.draws[0] != [4]uint32{3, 1, 0, 0} {
		t.Errorf("draws = %v, want [[3 1 0 0]]", pass.draws)
	}
	if !pass.ended {
		t.Error("render pass not ended")
	}

	if f.queue.submits != 1 {
		t.Errorf("submits = %d, want 1", f.queue.submits)
	}
	if f.surface.presented != 1 || f.surface.discarded != 0 {
		t.Errorf("presented/discarded = %d/%d, want 1/0", f.surface.presented, f.surface.discarded)
	}
}

func TestRenderAcquireFailure(t *testing.T) {
	reasons := []SurfaceStatus{SurfaceTimeout, SurfaceOutdated, SurfaceLost, SurfaceOutOfMemory}
	for _, reason := range reasons {
		t.Run(reason.String(), func(t *testing.T) {
			f := newFixture(t, defaultFixtureOptions())
			var rec passRecorder
			rec.install(f.gc)
			f.surface.acquireErrs = []error{unavailable(reason, errInjected)}

			wantReason(t, f.gc.Render(), reason)
			if f.queue.submits != 0 {
				t.Errorf("submits = %d, want 0", f.queue.submits)
			}
			if len(rec.descs) != 0 {
				t.Errorf("render passes = %d, want 0", len(rec.descs))
			}
			if f.surface.presented != 0 {
				t.Errorf("presented = %d, want 0", f.surface.presented)
			}

			// The next frame recovers without intervention.
			if err := f.gc.Render(); err != nil {
				t.Errorf("Render() after %v = %v, want nil", reason, err)
			}
		})
	}
}

func TestRenderUnclassifiedAcquireError(t *testing.T) {
	f := newFixture(t, defaultFixtureOptions())
	f.surface.acquireErrs = []error{errInjected}
	wantReason(t, f.gc.Render(), SurfaceLost)
}

func TestRenderSubmitFailureDiscardsFrame(t *testing.T) {
	f := newFixture(t, defaultFixtureOptions())
	f.queue.submitErr = errInjected

	wantReason(t, f.gc.Render(), SurfaceLost)
	if f.surface.discarded != 1 {
		t.Errorf("discarded = %d, want 1", f.surface.discarded)
	}
	if f.surface.presented != 0 {
		t.Errorf("presented = %d, want 0", f.surface.presented)
	}
	if n := f.gc.frames.inFlight(); n != 0 {
		t.Errorf("in-flight frames = %d, want 0", n)
	}
}

func TestRenderBeginEncodingFailureDiscardsEncoder(t *testing.T) {
	f := newFixture(t, defaultFixtureOptions())
	device := &beginFailDevice{Device: f.gc.gpu.device}
	f.gc.gpu.device = device

	wantReason(t, f.gc.Render(), SurfaceLost)
	if len(device.encoders) != 1 {
		t.Fatalf("encoders created = %d, want 1", len(device.encoders))
	}
	if n := device.encoders[0].discarded; n != 1 {
		t.Errorf("DiscardEncoding calls = %d, want 1", n)
	}
	if f.queue.submits != 0 {
		t.Errorf("submits = %d, want 0", f.queue.submits)
	}
	if f.surface.discarded != 1 {
		t.Errorf("discarded = %d, want 1", f.surface.discarded)
	}
}

func TestRenderBoundsFramesInFlight(t *testing.T) {
	f := newFixture(t, defaultFixtureOptions())
	for i := range 6 {
		if err := f.gc.Render(); err != nil {
			t.Fatalf("Render() #%d = %v", i, err)
		}
		if n := f.gc.frames.inFlight(); n > MaxFrameLatency {
			t.Fatalf("in-flight frames = %d, want <= %d", n, MaxFrameLatency)
		}
	}
	if f.queue.submits != 6 || f.surface.presented != 6 {
		t.Errorf("submits/presented = %d/%d, want 6/6", f.queue.submits, f.surface.presented)
	}
}

func TestResizeDrainsFrames(t *testing.T) {
	f := newFixture(t, defaultFixtureOptions())
	if err := f.gc.Render(); err != nil {
		t.Fatal(err)
	}
	if err := f.gc.Resize(f.gc.Size()); err != nil {
		t.Fatal(err)
	}
	if n := f.gc.frames.inFlight(); n != 0 {
		t.Errorf("in-flight frames after resize = %d, want 0", n)
	}
}

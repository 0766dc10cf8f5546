// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpushell/window"
)

func TestChooseFormat(t *testing.T) {
	tests := []struct {
		name    string
		formats []gputypes.TextureFormat
		want    gputypes.TextureFormat
		ok      bool
	}{
		{"srgb first", []gputypes.TextureFormat{gputypes.TextureFormatBGRA8UnormSrgb, gputypes.TextureFormatBGRA8Unorm}, gputypes.TextureFormatBGRA8UnormSrgb, true},
		{"srgb later", []gputypes.TextureFormat{gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb}, gputypes.TextureFormatRGBA8UnormSrgb, true},
		{"no srgb", []gputypes.TextureFormat{gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm}, gputypes.TextureFormatRGBA8Unorm, true},
		{"empty", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := chooseFormat(tt.formats)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("chooseFormat() = %v, %v, want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestChoosePresentMode(t *testing.T) {
	preferred := []PresentMode{PresentModeImmediate, PresentModeMailbox}
	tests := []struct {
		supported []PresentMode
		want      PresentMode
	}{
		{[]PresentMode{PresentModeFifo, PresentModeMailbox, PresentModeImmediate}, PresentModeImmediate},
		{[]PresentMode{PresentModeFifo, PresentModeMailbox}, PresentModeMailbox},
		{[]PresentMode{PresentModeFifo}, PresentModeFifo},
		{nil, PresentModeFifo},
	}
	for _, tt := range tests {
		if got := choosePresentMode(preferred, tt.supported); got != tt.want {
			t.Errorf("choosePresentMode(%v) = %v, want %v", tt.supported, got, tt.want)
		}
	}
}

func TestChooseAlphaMode(t *testing.T) {
	if got := chooseAlphaMode([]AlphaMode{AlphaModePreMultiplied, AlphaModeOpaque}); got != AlphaModePreMultiplied {
		t.Errorf("chooseAlphaMode() = %v, want first supported", got)
	}
	if got := chooseAlphaMode(nil); got != AlphaModeOpaque {
		t.Errorf("chooseAlphaMode(nil) = %v, want opaque", got)
	}
}

func TestScalePolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy ScalePolicy
		size   window.PhysicalSize
		scale  float64
		want   window.PhysicalSize
	}{
		{"physical ignores scale", PhysicalScale{}, window.PhysicalSize{Width: 1000, Height: 800}, 2, window.PhysicalSize{Width: 1000, Height: 800}},
		{"logical halves", LogicalScale{}, window.PhysicalSize{Width: 1000, Height: 800}, 2, window.PhysicalSize{Width: 500, Height: 400}},
		{"logical truncates", LogicalScale{}, window.PhysicalSize{Width: 1001, Height: 799}, 2, window.PhysicalSize{Width: 500, Height: 399}},
		{"logical clamps to 1", LogicalScale{}, window.PhysicalSize{Width: 1, Height: 1}, 3, window.PhysicalSize{Width: 1, Height: 1}},
		{"logical bad scale", LogicalScale{}, window.PhysicalSize{Width: 640, Height: 480}, 0, window.PhysicalSize{Width: 640, Height: 480}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.SurfaceSize(tt.size, tt.scale); got != tt.want {
				t.Errorf("SurfaceSize(%v, %v) = %v, want %v", tt.size, tt.scale, got, tt.want)
			}
		})
	}
}

func TestSurfaceUnavailableError(t *testing.T) {
	err := unavailable(SurfaceOutOfMemory, errInjected)
	if !errors.Is(err, errInjected) {
		t.Error("SurfaceUnavailableError must unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "out of memory") {
		t.Errorf("Error() = %q, want reason in message", err.Error())
	}
	reason, ok := SurfaceReason(err)
	if !ok || reason != SurfaceOutOfMemory {
		t.Errorf("SurfaceReason() = %v, %v, want out of memory, true", reason, ok)
	}
	if _, ok := SurfaceReason(errInjected); ok {
		t.Error("SurfaceReason(plain error) reported a reason")
	}
	if got := (&SurfaceUnavailableError{Reason: SurfaceTimeout}).Error(); got != "render: surface unavailable: timeout" {
		t.Errorf("Error() = %q", got)
	}
}

func TestPresentModeString(t *testing.T) {
	for m, want := range map[PresentMode]string{
		PresentModeFifo:        "fifo",
		PresentModeFifoRelaxed: "fifo-relaxed",
		PresentModeImmediate:   "immediate",
		PresentModeMailbox:     "mailbox",
	} {
		if m.String() != want {
			t.Errorf("%d.String() = %q, want %q", m, m.String(), want)
		}
	}
}

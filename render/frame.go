// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gpushell"
)

// ClearColor is the background every frame starts from.
var ClearColor = gputypes.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}

// triangleVertexCount is the number of vertices the shader expands from
// the vertex index.
const triangleVertexCount = 3

// Render draws and presents one frame.
//
// It returns nil when the frame was presented. Otherwise the error is a
// *SurfaceUnavailableError whose Reason tells the caller how to recover;
// Render itself never retries. Either one command buffer is submitted and
// presented, or nothing is submitted.
func (gc *GraphicsContext) Render() error {
	if gc.destroyed {
		return unavailable(SurfaceLost, ErrDestroyed)
	}
	if !gc.configured {
		return unavailable(SurfaceOutdated, ErrNotConfigured)
	}

	if err := gc.frames.reserve(); err != nil {
		if errors.Is(err, errFrameTimeout) {
			return unavailable(SurfaceTimeout, err)
		}
		return unavailable(SurfaceLost, err)
	}

	frame, err := gc.gpu.surface.Acquire()
	if err != nil {
		if _, ok := SurfaceReason(err); ok {
			return err
		}
		return unavailable(SurfaceLost, err)
	}
	if frame == nil {
		return unavailable(SurfaceLost, errNilFrame)
	}
	if frame.Suboptimal {
		gpushell.Logger().Debug("render: suboptimal surface texture")
	}

	view, err := gc.gpu.device.CreateTextureView(frame.Texture, &hal.TextureViewDescriptor{
		Label: "frame_view",
	})
	if err != nil {
		gc.gpu.surface.Discard(frame)
		return unavailable(SurfaceLost, fmt.Errorf("create frame view: %w", err))
	}

	cmd, err := gc.encodeFrame(view)
	if err != nil {
		gc.gpu.device.DestroyTextureView(view)
		gc.gpu.surface.Discard(frame)
		return unavailable(SurfaceLost, err)
	}

	if err := gc.frames.submit(gc.gpu.queue, cmd, view); err != nil {
		gc.gpu.device.FreeCommandBuffer(cmd)
		gc.gpu.device.DestroyTextureView(view)
		gc.gpu.surface.Discard(frame)
		return unavailable(SurfaceLost, fmt.Errorf("submit: %w", err))
	}

	if err := gc.gpu.surface.Present(gc.gpu.queue, frame); err != nil {
		if _, ok := SurfaceReason(err); ok {
			return err
		}
		return unavailable(SurfaceLost, err)
	}
	return nil
}

// encodeFrame records the clear pass and the triangle draw into one
// command buffer.
func (gc *GraphicsContext) encodeFrame(view hal.TextureView) (hal.CommandBuffer, error) {
	device := gc.gpu.device
	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "frame_encoder"})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("frame"); err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	pass := gc.beginPass(encoder, &hal.RenderPassDescriptor{
		Label: "frame_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     gputypes.LoadOpClear,
				StoreOp:    gputypes.StoreOpStore,
				ClearValue: ClearColor,
			},
		},
	})
	pass.SetPipeline(gc.pipeline.pipeline)
	pass.Draw(triangleVertexCount, 1, 0, 0)
	pass.End()

	cmd, err := encoder.EndEncoding()
	if err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	return cmd, nil
}

func (gc *GraphicsContext) beginPass(encoder hal.CommandEncoder, desc *hal.RenderPassDescriptor) hal.RenderPassEncoder {
	if gc.passHook != nil {
		return gc.passHook(encoder, desc)
	}
	return encoder.BeginRenderPass(desc)
}

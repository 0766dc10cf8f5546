// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gpushell/shader"
)

// trianglePipeline owns the shader module, layout and render pipeline used
// for every frame. It is immutable after creation.
type trianglePipeline struct {
	device   hal.Device
	module   hal.ShaderModule
	layout   hal.PipelineLayout
	pipeline hal.RenderPipeline
}

func newTrianglePipeline(device hal.Device, artifact *shader.Artifact, format gputypes.TextureFormat) (*trianglePipeline, error) {
	p := &trianglePipeline{device: device}

	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  artifact.Label,
		Source: artifact.ModuleSource(),
	})
	if err != nil {
		return nil, fmt.Errorf("render: create shader module: %w", err)
	}
	p.module = module

	layout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "triangle_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{},
	})
	if err != nil {
		p.destroy()
		return nil, fmt.Errorf("render: create pipeline layout: %w", err)
	}
	p.layout = layout

	pipeline, err := device.CreateRenderPipeline(pipelineDescriptor(module, layout, format))
	if err != nil {
		p.destroy()
		return nil, fmt.Errorf("render: create render pipeline: %w", err)
	}
	p.pipeline = pipeline
	return p, nil
}

// pipelineDescriptor describes the fixed-function state: triangle list,
// counter-clockwise front faces with back faces culled, no depth or stencil,
// one sample, and a single color target written without blending.
func pipelineDescriptor(module hal.ShaderModule, layout hal.PipelineLayout, format gputypes.TextureFormat) *hal.RenderPipelineDescriptor {
	return &hal.RenderPipelineDescriptor{
		Label:  "triangle_pipeline",
		Layout: layout,
		Vertex: hal.VertexState{
			Module:     module,
			EntryPoint: shader.VertexEntry,
		},
		Fragment: &hal.FragmentState{
			Module:     module,
			EntryPoint: shader.FragmentEntry,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    format,
					Blend:     nil,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: gputypes.FrontFaceCCW,
			CullMode:  gputypes.CullModeBack,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	}
}

func (p *trianglePipeline) destroy() {
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.layout != nil {
		p.device.DestroyPipelineLayout(p.layout)
		p.layout = nil
	}
	if p.module != nil {
		p.device.DestroyShaderModule(p.module)
		p.module = nil
	}
}

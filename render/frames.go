// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/wgpu/hal"
)

// frameWaitTimeout bounds how long Render waits for an old frame to retire.
const frameWaitTimeout = 5 * time.Second

var errFrameTimeout = errors.New("render: timed out waiting for in-flight frame")

// inflightFrame holds the resources of a submitted frame until the GPU has
// finished with it.
type inflightFrame struct {
	value uint64
	cmd   hal.CommandBuffer
	view  hal.TextureView
}

// frameRing limits the number of submitted, unfinished frames. Every
// submission signals one shared fence with an increasing value.
type frameRing struct {
	device  hal.Device
	fence   hal.Fence
	limit   int
	next    uint64
	frames  []inflightFrame
	timeout time.Duration
}

func newFrameRing(device hal.Device, limit int) (*frameRing, error) {
	fence, err := device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("render: create fence: %w", err)
	}
	return &frameRing{
		device:  device,
		fence:   fence,
		limit:   max(limit, 1),
		frames:  make([]inflightFrame, 0, limit),
		timeout: frameWaitTimeout,
	}, nil
}

// reserve waits until another frame may be submitted.
func (r *frameRing) reserve() error {
	for len(r.frames) >= r.limit {
		if err := r.retireOldest(); err != nil {
			return err
		}
	}
	return nil
}

// submit hands cmd to queue. On success the ring owns cmd and view.
func (r *frameRing) submit(queue hal.Queue, cmd hal.CommandBuffer, view hal.TextureView) error {
	value := r.next + 1
	if err := queue.Submit([]hal.CommandBuffer{cmd}, r.fence, value); err != nil {
		return err
	}
	r.next = value
	r.frames = append(r.frames, inflightFrame{value: value, cmd: cmd, view: view})
	return nil
}

func (r *frameRing) retireOldest() error {
	f := r.frames[0]
	ok, err := r.device.Wait(r.fence, f.value, r.timeout)
	if err != nil {
		return fmt.Errorf("render: wait for frame %d: %w", f.value, err)
	}
	if !ok {
		return errFrameTimeout
	}
	r.release(f)
	r.frames = r.frames[1:]
	return nil
}

// drain waits for every in-flight frame. Resources are released even when
// waiting fails, since the caller is about to tear down what they refer to.
func (r *frameRing) drain() error {
	var firstErr error
	for len(r.frames) > 0 {
		if err := r.retireOldest(); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			r.release(r.frames[0])
			r.frames = r.frames[1:]
		}
	}
	return firstErr
}

func (r *frameRing) inFlight() int { return len(r.frames) }

func (r *frameRing) release(f inflightFrame) {
	if f.view != nil {
		r.device.DestroyTextureView(f.view)
	}
	if f.cmd != nil {
		r.device.FreeCommandBuffer(f.cmd)
	}
}

func (r *frameRing) destroy() {
	_ = r.drain()
	if r.fence != nil {
		r.device.DestroyFence(r.fence)
		r.fence = nil
	}
}

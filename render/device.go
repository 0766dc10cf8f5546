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
)

// binding is the instance/adapter/device/queue/surface set a
// GraphicsContext is built on. Fields are released in reverse order.
type binding struct {
	instance    hal.Instance
	adapter     hal.Adapter
	device      hal.Device
	queue       hal.Queue
	surface     Surface
	adapterName string
}

func (b *binding) release() {
	if b.device != nil {
		b.device.Destroy()
	}
	if b.surface != nil {
		b.surface.Destroy()
	}
	if b.instance != nil {
		b.instance.Destroy()
	}
	*b = binding{}
}

// createInstance returns an instance for the first backend in order that is
// compiled in and initializes.
func createInstance(backends []gputypes.Backend) (hal.Instance, gputypes.Backend, error) {
	var errs []error
	for _, b := range backends {
		backend, ok := hal.GetBackend(b)
		if !ok {
			continue
		}
		instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
		if err != nil {
			errs = append(errs, fmt.Errorf("backend %v: %w", b, err))
			continue
		}
		return instance, b, nil
	}
	if len(errs) > 0 {
		return nil, 0, fmt.Errorf("%w: %w", ErrNoBackend, errors.Join(errs...))
	}
	return nil, 0, ErrNoBackend
}

// openDevice picks an adapter able to present to surface and opens a device
// with the given limits.
func openDevice(ctx context.Context, b *binding, hint hal.Surface, limits gputypes.Limits) error {
	adapters := b.instance.EnumerateAdapters(hint)
	if len(adapters) == 0 {
		return ErrNoAdapter
	}
	selected := &adapters[selectAdapter(adapters)]
	if err := ctx.Err(); err != nil {
		return err
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), limits)
	if err != nil {
		return fmt.Errorf("render: open device on %s: %w", selected.Info.Name, err)
	}
	b.adapter = selected.Adapter
	b.device = openDev.Device
	b.queue = openDev.Queue
	b.adapterName = selected.Info.Name
	gpushell.Logger().Info("render: adapter selected",
		"name", selected.Info.Name, "type", selected.Info.DeviceType)
	return nil
}

// selectAdapter returns the index of the highest-performance adapter:
// discrete before integrated before anything else, first wins on ties.
func selectAdapter(adapters []hal.ExposedAdapter) int {
	best, bestRank := 0, adapterRank(adapters[0].Info.DeviceType)
	for i := 1; i < len(adapters); i++ {
		if r := adapterRank(adapters[i].Info.DeviceType); r < bestRank {
			best, bestRank = i, r
		}
	}
	return best
}

func adapterRank(t gputypes.DeviceType) int {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return 0
	case gputypes.DeviceTypeIntegratedGPU:
		return 1
	default:
		return 2
	}
}

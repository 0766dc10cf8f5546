// Package app drives a graphics context from window events.
//
// Controller is a small state machine. It creates the window and the
// graphics context when the event loop resumes, translates window events
// into Resize and Render calls, and decides how to react to each
// presentation outcome.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gpushell"
	"github.com/gogpu/gpushell/render"
	"github.com/gogpu/gpushell/shader"
	"github.com/gogpu/gpushell/window"
)

// State is the lifecycle state of a Controller.
type State uint8

const (
	// StateUninitialized means no window or graphics context exists yet.
	StateUninitialized State = iota
	// StateReady means the window and graphics context both exist.
	StateReady
	// StateExiting is terminal. No further events are processed.
	StateExiting
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateExiting:
		return "exiting"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// ErrOutOfMemory is recorded when presentation runs out of device memory.
var ErrOutOfMemory = errors.New("app: GPU out of memory")

// Graphics is what the controller needs from a graphics context.
// *render.GraphicsContext implements it.
type Graphics interface {
	Resize(size window.PhysicalSize) error
	Render() error
	Update()
	Input(ev window.Event) bool
	Size() window.PhysicalSize
	Destroy()
}

// Connector builds the graphics context for a newly created window.
// It blocks until the GPU is ready.
type Connector func(ctx context.Context, w window.Handle) (Graphics, error)

// RenderConnector returns a Connector that builds a render.GraphicsContext
// on platform with the given shader.
func RenderConnector(platform render.Platform, artifact *shader.Artifact) Connector {
	return func(ctx context.Context, w window.Handle) (Graphics, error) {
		gc, err := render.New(ctx, w, platform, artifact)
		if err != nil {
			return nil, err
		}
		return gc, nil
	}
}

// Options configure a Controller.
type Options struct {
	Title   string
	Size    window.LogicalSize
	QuitKey gpucontext.Key
	Connect Connector
}

// OptionsFromConfig derives controller options from the startup config.
func OptionsFromConfig(cfg gpushell.Config, connect Connector) Options {
	return Options{
		Title:   cfg.Title,
		Size:    window.LogicalSize{Width: float64(cfg.Width), Height: float64(cfg.Height)},
		QuitKey: cfg.QuitKey,
		Connect: connect,
	}
}

// Controller owns the window and graphics context and implements
// window.Handler. Its methods run on the event-loop thread.
type Controller struct {
	opts Options
	ctx  context.Context

	state    State
	window   window.Handle
	graphics Graphics

	// logical is the last known logical window size, re-expressed in
	// physical pixels when the scale factor changes.
	logical window.LogicalSize
	scale   float64

	err error
}

// New creates a controller in StateUninitialized. ctx bounds graphics
// context construction.
func New(ctx context.Context, opts Options) *Controller {
	return &Controller{
		opts:    opts,
		ctx:     ctx,
		logical: opts.Size,
		scale:   1,
	}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Err returns the fatal error that moved the controller to StateExiting,
// or nil after a normal exit.
func (c *Controller) Err() error { return c.err }

// Resumed creates the window and blocks until its graphics context is
// built. Later calls are ignored.
func (c *Controller) Resumed(loop window.ActiveLoop) {
	if c.state != StateUninitialized {
		return
	}
	log := gpushell.Logger()

	w, err := loop.CreateWindow(window.Attributes{Title: c.opts.Title, Size: c.opts.Size})
	if err != nil {
		c.fail(loop, fmt.Errorf("app: create window: %w", err))
		return
	}
	g, err := c.opts.Connect(c.ctx, w)
	if err != nil {
		c.fail(loop, fmt.Errorf("app: create graphics context: %w", err))
		return
	}

	c.window = w
	c.graphics = g
	c.scale = w.ScaleFactor()
	c.state = StateReady
	log.Info("app: ready", "title", c.opts.Title, "size", g.Size())
	w.RequestRedraw()
}

// WindowEvent handles one event for the controller's window. Events for
// other windows, and all events outside StateReady, are ignored.
func (c *Controller) WindowEvent(loop window.ActiveLoop, id window.ID, ev window.Event) {
	if c.state != StateReady || id != c.window.ID() {
		return
	}
	log := gpushell.Logger()

	switch e := ev.(type) {
	case window.CloseRequested:
		c.exit(loop, "close requested")

	case window.KeyboardInput:
		if e.Pressed && e.Identified && e.Key == c.opts.QuitKey {
			c.exit(loop, "quit key")
			return
		}
		if c.graphics.Input(ev) {
			return
		}
		log.Debug("app: keyboard", "key", e.Key, "code", e.Code, "pressed", e.Pressed, "repeat", e.Repeat)

	case window.MouseInput:
		if c.graphics.Input(ev) {
			return
		}
		log.Debug("app: mouse button", "button", e.Button, "pressed", e.Pressed)

	case window.MouseWheel:
		if c.graphics.Input(ev) {
			return
		}
		log.Debug("app: mouse wheel", "dx", e.DeltaX, "dy", e.DeltaY)

	case window.CursorMoved:
		if c.graphics.Input(ev) {
			return
		}
		log.Debug("app: cursor moved", "x", e.X, "y", e.Y)

	case window.Resized:
		if !e.Size.IsZero() {
			c.logical = e.Size.ToLogical(c.scale)
		}
		c.resize(loop, e.Size)

	case window.ScaleFactorChanged:
		c.scale = e.ScaleFactor
		c.resize(loop, c.logical.ToPhysical(e.ScaleFactor))

	case window.RedrawRequested:
		c.redraw(loop)
	}
}

// Shutdown releases the graphics context. Call it after the event loop returns.
func (c *Controller) Shutdown() {
	if c.graphics != nil {
		c.graphics.Destroy()
		c.graphics = nil
	}
}

func (c *Controller) redraw(loop window.ActiveLoop) {
	log := gpushell.Logger()
	size := c.graphics.Size()
	c.graphics.Update()

	err := c.graphics.Render()
	if err != nil {
		reason, ok := render.SurfaceReason(err)
		switch {
		case !ok:
			log.Warn("app: render failed", "err", err)
		case reason == render.SurfaceLost:
			log.Warn("app: surface lost, reconfiguring", "width", size.Width, "height", size.Height)
			c.resize(loop, size)
		case reason == render.SurfaceOutOfMemory:
			c.err = fmt.Errorf("%w: %w", ErrOutOfMemory, err)
			log.Error("app: out of memory, exiting", "err", err)
			c.exit(loop, "out of memory")
		default:
			log.Warn("app: frame skipped", "reason", reason, "err", err)
		}
	}
	if c.state == StateReady {
		c.window.RequestRedraw()
	}
}

func (c *Controller) resize(loop window.ActiveLoop, size window.PhysicalSize) {
	if err := c.graphics.Resize(size); err != nil {
		c.fail(loop, err)
	}
}

func (c *Controller) exit(loop window.ActiveLoop, reason string) {
	gpushell.Logger().Info("app: exiting", "reason", reason)
	c.state = StateExiting
	loop.Exit()
}

func (c *Controller) fail(loop window.ActiveLoop, err error) {
	if c.err == nil {
		c.err = err
	}
	gpushell.Logger().Error("app: fatal", "err", err)
	c.state = StateExiting
	loop.Exit()
}

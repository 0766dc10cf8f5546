// Package desktop implements the window system on GLFW.
//
// GLFW must be driven from the main OS thread, so importing this package
// locks the main goroutine to it. Windows are created without a client API;
// the GPU surface is created from the native handles instead.
package desktop

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/gpushell"
	"github.com/gogpu/gpushell/internal/pump"
	"github.com/gogpu/gpushell/window"
)

func init() {
	runtime.LockOSThread()
}

// EventLoop runs the GLFW event loop. It implements window.ActiveLoop.
type EventLoop struct {
	flow    gpushell.ControlFlow
	queue   pump.Queue
	windows map[window.ID]*Window
	nextID  window.ID
}

// NewEventLoop initializes GLFW. It must be called from the main goroutine.
func NewEventLoop(flow gpushell.ControlFlow) (*EventLoop, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("desktop: init glfw: %w", err)
	}
	return &EventLoop{
		flow:    flow,
		windows: make(map[window.ID]*Window),
	}, nil
}

// Run delivers events to h until Exit is called, then destroys all windows
// and terminates GLFW.
func (l *EventLoop) Run(h window.Handler) {
	defer l.terminate()

	h.Resumed(l)
	for !l.queue.Exiting() {
		l.queue.Dispatch(h, l)
		if l.queue.Exiting() {
			break
		}
		if l.queue.ShouldBlock(l.flow) {
			glfw.WaitEvents()
		} else {
			glfw.PollEvents()
		}
	}
}

// CreateWindow opens a window with no client API.
func (l *EventLoop) CreateWindow(attrs window.Attributes) (window.Handle, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	gw, err := glfw.CreateWindow(int(attrs.Size.Width), int(attrs.Size.Height), attrs.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("desktop: create window: %w", err)
	}
	l.nextID++
	w := &Window{id: l.nextID, win: gw, loop: l}
	w.installCallbacks()
	l.windows[w.id] = w

	gpushell.Logger().Info("desktop: window created",
		"title", attrs.Title, "size", w.InnerSize(), "scale", w.ScaleFactor())
	return w, nil
}

// Exit stops the loop after the current callback.
func (l *EventLoop) Exit() {
	l.queue.Exit()
}

func (l *EventLoop) terminate() {
	for id, w := range l.windows {
		w.win.Destroy()
		delete(l.windows, id)
	}
	glfw.Terminate()
}

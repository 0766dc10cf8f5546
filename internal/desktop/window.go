package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/gpushell/window"
)

// Window is a GLFW window. It implements window.Handle.
type Window struct {
	id   window.ID
	win  *glfw.Window
	loop *EventLoop
}

func (w *Window) ID() window.ID { return w.id }

func (w *Window) InnerSize() window.PhysicalSize {
	width, height := w.win.GetFramebufferSize()
	return window.PhysicalSize{Width: uint32(max(width, 0)), Height: uint32(max(height, 0))}
}

func (w *Window) ScaleFactor() float64 {
	x, _ := w.win.GetContentScale()
	if x <= 0 {
		return 1
	}
	return float64(x)
}

func (w *Window) RequestRedraw() {
	w.loop.queue.RequestRedraw(w.id)
}

func (w *Window) SurfaceHandles() (display, handle uintptr) {
	return nativeHandles(w.win)
}

func (w *Window) push(ev window.Event) {
	w.loop.queue.Push(w.id, ev)
}

// installCallbacks translates GLFW callbacks into queued events.
func (w *Window) installCallbacks() {
	w.win.SetCloseCallback(func(gw *glfw.Window) {
		// The application decides whether to close.
		gw.SetShouldClose(false)
		w.push(window.CloseRequested{})
	})
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.push(window.Resized{Size: window.PhysicalSize{Width: uint32(max(width, 0)), Height: uint32(max(height, 0))}})
	})
	w.win.SetContentScaleCallback(func(_ *glfw.Window, x, _ float32) {
		w.push(window.ScaleFactorChanged{ScaleFactor: float64(x)})
	})
	w.win.SetRefreshCallback(func(*glfw.Window) {
		w.RequestRedraw()
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k, ok := mapKey(key)
		w.push(window.KeyboardInput{
			Key:        k,
			Identified: ok,
			Code:       int(key),
			Pressed:    action != glfw.Release,
			Repeat:     action == glfw.Repeat,
		})
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		w.push(window.MouseInput{Button: mapMouseButton(button), Pressed: action == glfw.Press})
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		w.push(window.MouseWheel{DeltaX: xoff, DeltaY: yoff})
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.push(window.CursorMoved{X: x, Y: y})
	})
	w.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		w.push(window.Focused{Focused: focused})
	})
	w.win.SetPosCallback(func(_ *glfw.Window, x, y int) {
		w.push(window.Moved{X: x, Y: y})
	})
}

// Package window defines the boundary between the shell and the platform
// window system: sizes, typed events, and the window and event-loop
// interfaces a platform driver implements.
package window

// Attributes describe a window to create.
type Attributes struct {
	Title string
	Size  LogicalSize
}

// Handle is a native window owned by the application controller.
//
// Methods are called from the event-loop thread only.
type Handle interface {
	ID() ID

	// InnerSize returns the drawable area in physical pixels.
	InnerSize() PhysicalSize

	// ScaleFactor returns the ratio of physical to logical pixels.
	ScaleFactor() float64

	// RequestRedraw schedules a RedrawRequested event.
	RequestRedraw()

	// SurfaceHandles returns the native display and window handles used
	// to create a presentation surface.
	SurfaceHandles() (display, window uintptr)
}

// ActiveLoop is the event loop as seen from inside a callback.
type ActiveLoop interface {
	CreateWindow(attrs Attributes) (Handle, error)

	// Exit asks the loop to stop after the current callback returns.
	// Events already queued are not delivered.
	Exit()
}

// Handler receives event-loop callbacks. Callbacks run one at a time on
// the event-loop thread.
type Handler interface {
	// Resumed is called when the window system is ready. It is called at
	// least once before any WindowEvent.
	Resumed(loop ActiveLoop)

	// WindowEvent delivers an event for the window identified by id.
	WindowEvent(loop ActiveLoop, id ID, ev Event)
}

package window

import (
	"fmt"

	"github.com/gogpu/gpucontext"
)

// ID identifies a window within an event loop.
type ID uint64

// Event is a window event delivered by the event loop.
// The concrete types below are the complete set.
type Event interface {
	isEvent()
}

// CloseRequested is sent when the user asks to close the window.
type CloseRequested struct{}

// Resized carries the new physical size of the window's drawable area.
// Either dimension may be zero while the window is minimized.
type Resized struct {
	Size PhysicalSize
}

// ScaleFactorChanged is sent when the window moves to a display with a
// different content scale.
type ScaleFactorChanged struct {
	ScaleFactor float64
}

// RedrawRequested asks the application to draw a frame.
type RedrawRequested struct{}

// KeyboardInput is a key press, repeat or release.
type KeyboardInput struct {
	// Key is meaningful only when Identified is true.
	Key        gpucontext.Key
	Identified bool

	// Code is the platform key code.
	Code    int
	Pressed bool
	Repeat  bool
}

// MouseButton identifies a mouse button.
type MouseButton uint8

// Mouse buttons.
const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseOther
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	default:
		return "other"
	}
}

// MouseInput is a mouse button press or release.
type MouseInput struct {
	Button  MouseButton
	Pressed bool
}

// MouseWheel is a scroll delta in lines.
type MouseWheel struct {
	DeltaX float64
	DeltaY float64
}

// CursorMoved carries the cursor position relative to the window's top-left corner.
type CursorMoved struct {
	X float64
	Y float64
}

// Focused reports a change of keyboard focus.
type Focused struct {
	Focused bool
}

// Moved carries the new window position in screen coordinates.
type Moved struct {
	X int
	Y int
}

func (CloseRequested) isEvent()     {}
func (Resized) isEvent()            {}
func (ScaleFactorChanged) isEvent() {}
func (RedrawRequested) isEvent()    {}
func (KeyboardInput) isEvent()      {}
func (MouseInput) isEvent()         {}
func (MouseWheel) isEvent()         {}
func (CursorMoved) isEvent()        {}
func (Focused) isEvent()            {}
func (Moved) isEvent()              {}

// IsInput reports whether ev is a keyboard, mouse button, wheel or cursor event.
func IsInput(ev Event) bool {
	switch ev.(type) {
	case KeyboardInput, MouseInput, MouseWheel, CursorMoved:
		return true
	}
	return false
}

func (e Resized) String() string {
	return fmt.Sprintf("Resized(%dx%d)", e.Size.Width, e.Size.Height)
}

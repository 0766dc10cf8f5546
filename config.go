package gpushell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gpucontext"
)

// Default window settings.
const (
	DefaultTitle  = "WebGPU Rendering"
	DefaultWidth  = 500
	DefaultHeight = 400
)

var (
	// ErrInvalidSize is returned when a configured window size has a zero dimension.
	ErrInvalidSize = errors.New("gpushell: window size must be positive")

	// ErrInvalidControlFlow is returned for an unknown control flow name.
	ErrInvalidControlFlow = errors.New("gpushell: unknown control flow")
)

// ControlFlow selects how the event loop schedules frames.
// It is chosen once at startup.
type ControlFlow uint8

const (
	// Poll runs the loop continuously, rendering as fast as presentation allows.
	Poll ControlFlow = iota
	// Wait blocks the loop until events are pending.
	Wait
)

// String returns the control flow name.
func (f ControlFlow) String() string {
	switch f {
	case Poll:
		return "poll"
	case Wait:
		return "wait"
	default:
		return fmt.Sprintf("ControlFlow(%d)", uint8(f))
	}
}

// ParseControlFlow parses "poll" or "wait" (case-insensitive).
func ParseControlFlow(s string) (ControlFlow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "poll":
		return Poll, nil
	case "wait":
		return Wait, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidControlFlow, s)
}

// Config holds the startup settings of the shell.
//
// Width and Height are logical (scale-independent) window dimensions.
type Config struct {
	Title       string
	Width       uint32
	Height      uint32
	ControlFlow ControlFlow

	// QuitKey closes the application when pressed. DefaultConfig sets
	// Escape, which every window system identifies.
	QuitKey gpucontext.Key

	// Backend names a registered platform backend. Empty selects the
	// highest-priority registered one.
	Backend string

	// ShaderPath replaces the embedded triangle shader when non-empty.
	ShaderPath string
}

// DefaultConfig returns the default configuration: a 500x400 window titled
// "WebGPU Rendering", continuous rendering, Escape to quit.
func DefaultConfig() Config {
	return Config{
		Title:       DefaultTitle,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		ControlFlow: Poll,
		QuitKey:     gpucontext.KeyEscape,
	}
}

// WithTitle returns a copy of c with the window title set.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithSize returns a copy of c with the logical window size set.
func (c Config) WithSize(width, height uint32) Config {
	c.Width = width
	c.Height = height
	return c
}

// WithControlFlow returns a copy of c with the control flow set.
func (c Config) WithControlFlow(f ControlFlow) Config {
	c.ControlFlow = f
	return c
}

// WithBackend returns a copy of c with the backend name set.
func (c Config) WithBackend(name string) Config {
	c.Backend = name
	return c
}

// WithShaderPath returns a copy of c that loads its shader from path.
func (c Config) WithShaderPath(path string) Config {
	c.ShaderPath = path
	return c
}

// Validate reports whether c can be used to start the shell.
func (c Config) Validate() error {
	if c.Width == 0 || c.Height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.ControlFlow != Poll && c.ControlFlow != Wait {
		return fmt.Errorf("%w: %d", ErrInvalidControlFlow, uint8(c.ControlFlow))
	}
	return nil
}

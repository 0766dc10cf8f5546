package window

import "math"

// PhysicalSize is a size in device pixels.
type PhysicalSize struct {
	Width  uint32
	Height uint32
}

// IsZero reports whether either dimension is zero.
func (s PhysicalSize) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// ToLogical converts s to logical units at the given scale factor.
func (s PhysicalSize) ToLogical(scale float64) LogicalSize {
	if scale <= 0 {
		scale = 1
	}
	return LogicalSize{Width: float64(s.Width) / scale, Height: float64(s.Height) / scale}
}

// LogicalSize is a scale-independent size.
type LogicalSize struct {
	Width  float64
	Height float64
}

// ToPhysical converts s to device pixels at the given scale factor,
// rounding to the nearest pixel.
func (s LogicalSize) ToPhysical(scale float64) PhysicalSize {
	if scale <= 0 {
		scale = 1
	}
	return PhysicalSize{
		Width:  toPixels(s.Width * scale),
		Height: toPixels(s.Height * scale),
	}
}

func toPixels(v float64) uint32 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(math.Round(v))
}

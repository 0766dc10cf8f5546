// Package shader provides the shader program drawn by the shell.
//
// An Artifact is WGSL source that has been compiled once with naga, so a
// broken program fails at startup instead of at pipeline creation. The
// embedded default draws a single triangle; a replacement can be loaded
// from disk as long as it declares the same entry points.
package shader

import (
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// Entry point names every artifact must declare.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

//go:embed triangle.wgsl
var triangleSource string

var (
	// ErrMissingEntryPoint is returned when a program lacks vs_main or fs_main.
	ErrMissingEntryPoint = errors.New("shader: missing entry point")

	// ErrCompile is returned when naga rejects the program.
	ErrCompile = errors.New("shader: compile failed")
)

var (
	vertexEntryRe   = regexp.MustCompile(`@vertex\s+fn\s+` + VertexEntry + `\b`)
	fragmentEntryRe = regexp.MustCompile(`@fragment\s+fn\s+` + FragmentEntry + `\b`)
)

// Artifact is a validated shader program.
type Artifact struct {
	Label string
	WGSL  string
}

// Triangle returns the embedded triangle program.
func Triangle() (*Artifact, error) {
	return Parse("triangle", triangleSource)
}

// LoadFile reads and validates a WGSL program from path.
func LoadFile(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shader: read %s: %w", path, err)
	}
	return Parse(filepath.Base(path), string(data))
}

// Parse validates WGSL source: both entry points must be declared with the
// right stage attribute and the program must compile.
func Parse(label, src string) (*Artifact, error) {
	if !vertexEntryRe.MatchString(src) {
		return nil, fmt.Errorf("%w: %s: @vertex fn %s", ErrMissingEntryPoint, label, VertexEntry)
	}
	if !fragmentEntryRe.MatchString(src) {
		return nil, fmt.Errorf("%w: %s: @fragment fn %s", ErrMissingEntryPoint, label, FragmentEntry)
	}
	if err := validate(src); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCompile, label, err)
	}
	return &Artifact{Label: label, WGSL: src}, nil
}

// ModuleSource returns the source handed to hal.Device.CreateShaderModule.
// Backends translate WGSL themselves.
func (a *Artifact) ModuleSource() hal.ShaderSource {
	return hal.ShaderSource{WGSL: a.WGSL}
}

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// validate compiles src with naga and checks the output is a SPIR-V module.
// The words are discarded; backends translate the WGSL themselves.
func validate(src string) error {
	b, err := naga.Compile(src)
	if err != nil {
		return err
	}
	return checkSPIRV(b)
}

func checkSPIRV(b []byte) error {
	if len(b) < 4 || len(b)%4 != 0 {
		return fmt.Errorf("SPIR-V length %d is not a positive multiple of 4", len(b))
	}
	if magic := binary.LittleEndian.Uint32(b); magic != spirvMagic {
		return fmt.Errorf("SPIR-V magic %#x, want %#x", magic, spirvMagic)
	}
	return nil
}

package programs

import (
	"fmt"
	"strings"
)

// FlowFieldMarker identifies vertex shaders that render the flow-field point cloud.
const FlowFieldMarker = "flowfield"

// ComponentType is the GL enum for a vertex attribute component.
type ComponentType uint32

// Float32 matches GL_FLOAT.
const Float32 ComponentType = 0x1406

func (t ComponentType) Size() int {
	switch t {
	case Float32:
		return 4
	default:
		return 0
	}
}

// Attribute describes one vertex attribute inside an interleaved buffer.
type Attribute struct {
	Index      uint32
	Size       int32
	Type       ComponentType
	Normalized bool
	Stride     int32
	Offset     int
}

// PositionTexCoord is the layout shared by every art:
// vec2 position followed by vec2 texcoord.
func PositionTexCoord() []Attribute {
	return []Attribute{
		{Index: 0, Size: 2, Type: Float32, Stride: 4 * 4, Offset: 0},
		{Index: 1, Size: 2, Type: Float32, Stride: 4 * 4, Offset: 2 * 4},
	}
}

type DrawMode int

const (
	Triangles DrawMode = iota
	Points
)

func (m DrawMode) String() string {
	switch m {
	case Triangles:
		return "triangles"
	case Points:
		return "points"
	default:
		return fmt.Sprintf("DrawMode(%d)", int(m))
	}
}

// Art is one shader + mesh + update strategy bundle.
type Art struct {
	VertexShader   string
	FragmentShader string
	Vertices       []float32
	Layout         []Attribute
	Update         UpdateStrategy
}

// Name is the fragment shader's file name without directory or extension.
func (a Art) Name() string {
	return ShortName(a.FragmentShader)
}

// ShortName strips everything up to the last '/' and from the last '.' after it.
func ShortName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		path = path[:i]
	}
	return path
}

func (a Art) DrawMode() DrawMode {
	if strings.Contains(a.VertexShader, FlowFieldMarker) {
		return Points
	}
	return Triangles
}

// Stride is the size in bytes of a single vertex.
func (a Art) Stride() int {
	if len(a.Layout) == 0 {
		return 0
	}
	return int(a.Layout[0].Stride)
}

// VertexCount is zero when the layout has no positive stride.
func (a Art) VertexCount() int {
	stride := a.Stride()
	if stride <= 0 {
		return 0
	}
	return len(a.Vertices) * 4 / stride
}

// Validate checks that the vertex data is a whole number of vertices
// and that every attribute fits inside a vertex.
func (a Art) Validate() error {
	if a.Name() == "" {
		return fmt.Errorf("art with fragment shader %q has an empty name", a.FragmentShader)
	}
	if len(a.Layout) == 0 {
		return fmt.Errorf("art %v has no vertex attributes", a.Name())
	}

	stride := a.Stride()
	if stride <= 0 {
		return fmt.Errorf("art %v: stride %v must be positive", a.Name(), stride)
	}
	for _, attr := range a.Layout {
		if attr.Size <= 0 {
			return fmt.Errorf("art %v: attribute %v has %v components", a.Name(), attr.Index, attr.Size)
		}
		if int(attr.Stride) != stride {
			return fmt.Errorf("art %v: attribute %v has stride %v, want %v", a.Name(), attr.Index, attr.Stride, stride)
		}
		end := attr.Offset + int(attr.Size)*attr.Type.Size()
		if attr.Type.Size() == 0 || end > stride {
			return fmt.Errorf("art %v: attribute %v does not fit in a %v byte vertex", a.Name(), attr.Index, stride)
		}
	}

	size := len(a.Vertices) * 4
	if size == 0 || size%stride != 0 {
		return fmt.Errorf("art %v: %v bytes of vertex data is not a multiple of stride %v", a.Name(), size, stride)
	}
	return nil
}

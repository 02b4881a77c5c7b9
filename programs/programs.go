package programs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"strings"
)

// DefaultPoints is the flow-field point count when none is configured.
const DefaultPoints = 500

var ErrNoArts = errors.New("no arts available")

// ShaderPrefix starts every art's shader path. Shader filesystems are rooted
// below it, so "shaders/julia.glsl" is read as "julia.glsl".
const ShaderPrefix = "shaders/"

//go:embed shaders/*.glsl
var embedded embed.FS

// Shaders returns the embedded shader sources.
func Shaders() fs.FS {
	sub, err := fs.Sub(embedded, strings.TrimSuffix(ShaderPrefix, "/"))
	if err != nil {
		panic(err)
	}
	return sub
}

// ReadShader loads the source for an art's shader path from fsys.
func ReadShader(fsys fs.FS, path string) (string, error) {
	b, err := fs.ReadFile(fsys, strings.TrimPrefix(path, ShaderPrefix))
	if err != nil {
		return "", fmt.Errorf("reading shader %v failed: %w", path, err)
	}
	return string(b), nil
}

type UnknownArtError struct {
	Name string
}

func (e *UnknownArtError) Error() string {
	return fmt.Sprintf("unknown art '%v'", e.Name)
}

// Catalog is an immutable, ordered list of arts.
type Catalog struct {
	arts []Art
}

func NewCatalog(arts ...Art) Catalog {
	return Catalog{arts: append([]Art(nil), arts...)}
}

// Default builds the built-in arts. rng seeds the flow-field points.
func Default(rng *rand.Rand, points int) Catalog {
	if points <= 0 {
		points = DefaultPoints
	}

	return NewCatalog(
		Mandelbrot(),
		Julia(),
		JuliaNoise(),
		FlowField(rng, points),
	)
}

// quad covers clip space with two triangles.
func quad() []float32 {
	return []float32{
		-1, -1, 0, 0,
		1, -1, 1, 0,
		-1, 1, 0, 1,

		-1, 1, 0, 1,
		1, -1, 1, 0,
		1, 1, 1, 1,
	}
}

func (c Catalog) Len() int {
	return len(c.arts)
}

func (c Catalog) Art(i int) Art {
	return c.arts[i]
}

func (c Catalog) Names() []string {
	names := make([]string, len(c.arts))
	for i, art := range c.arts {
		names[i] = art.Name()
	}
	return names
}

// Resolve returns the first art whose short name equals name exactly.
func (c Catalog) Resolve(name string) (int, Art, error) {
	for i, art := range c.arts {
		if art.Name() == name {
			return i, art, nil
		}
	}
	return -1, Art{}, &UnknownArtError{Name: name}
}

// Validate checks every art and that short names are unique.
func (c Catalog) Validate() error {
	if len(c.arts) == 0 {
		return ErrNoArts
	}

	seen := make(map[string]bool, len(c.arts))
	for _, art := range c.arts {
		if err := art.Validate(); err != nil {
			return err
		}
		if seen[art.Name()] {
			return fmt.Errorf("duplicate art name %v", art.Name())
		}
		seen[art.Name()] = true
	}
	return nil
}

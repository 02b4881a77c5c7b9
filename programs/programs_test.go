package programs

import (
	"errors"
	"io/fs"
	"math/rand"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return Default(rand.New(rand.NewSource(1)), DefaultPoints)
}

func TestShortName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"shaders/mandelbrot.glsl", "mandelbrot"},
		{"mandelbrot.glsl", "mandelbrot"},
		{"mandelbrot", "mandelbrot"},
		{"a/b/c/julia.frag.glsl", "julia.frag"},
		{"dir.d/noext", "noext"},
		{"shaders/.glsl", ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ShortName(tt.path), tt.path)
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := testCatalog()
	require.NoError(t, c.Validate())
	require.Equal(t, []string{"mandelbrot", "julia", "julianoise", "flowfield"}, c.Names())

	seen := map[string]bool{}
	for i := 0; i < c.Len(); i++ {
		name := c.Art(i).Name()
		require.NotEmpty(t, name)
		require.False(t, seen[name], "duplicate name %v", name)
		seen[name] = true
	}
}

func TestDefaultShadersEmbedded(t *testing.T) {
	c := testCatalog()
	for i := 0; i < c.Len(); i++ {
		art := c.Art(i)
		for _, path := range []string{art.VertexShader, art.FragmentShader} {
			src, err := ReadShader(Shaders(), path)
			require.NoError(t, err)
			require.Contains(t, src, "#version 330 core")
		}
	}
}

func TestReadShaderFromRoot(t *testing.T) {
	fsys := fstest.MapFS{
		"julia.glsl": {Data: []byte("#version 330 core\n")},
	}

	src, err := ReadShader(fsys, "shaders/julia.glsl")
	require.NoError(t, err)
	require.Equal(t, "#version 330 core\n", src)

	_, err = ReadShader(fsys, "shaders/missing.glsl")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestResolve(t *testing.T) {
	c := testCatalog()

	i, art, err := c.Resolve("mandelbrot")
	require.NoError(t, err)
	require.Equal(t, 0, i)
	require.Equal(t, "shaders/mandelbrot.glsl", art.FragmentShader)

	_, again, err := c.Resolve("mandelbrot")
	require.NoError(t, err)
	require.Equal(t, art.VertexShader, again.VertexShader)
	require.Equal(t, art.FragmentShader, again.FragmentShader)

	_, _, err = c.Resolve("nonexistent")
	var unknown *UnknownArtError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "nonexistent", unknown.Name)

	_, _, err = c.Resolve("Mandelbrot")
	require.Error(t, err)

	_, _, err = c.Resolve("mandel")
	require.Error(t, err)
}

func TestResolveFirstMatch(t *testing.T) {
	c := NewCatalog(
		Art{VertexShader: "a/vertex.glsl", FragmentShader: "a/same.glsl"},
		Art{VertexShader: "b/vertex.glsl", FragmentShader: "b/same.glsl"},
	)

	i, art, err := c.Resolve("same")
	require.NoError(t, err)
	require.Equal(t, 0, i)
	require.Equal(t, "a/vertex.glsl", art.VertexShader)
}

func TestDrawMode(t *testing.T) {
	require.Equal(t, Points, Art{VertexShader: "shaders/vertexflowfield.glsl"}.DrawMode())
	require.Equal(t, Points, Art{VertexShader: "other/flowfield_v2.vert"}.DrawMode())
	require.Equal(t, Triangles, Art{VertexShader: "shaders/vertex.glsl"}.DrawMode())

	c := testCatalog()
	for i := 0; i < c.Len(); i++ {
		art := c.Art(i)
		if art.Name() == "flowfield" {
			require.Equal(t, Points, art.DrawMode())
		} else {
			require.Equal(t, Triangles, art.DrawMode())
		}
	}
}

func TestVertexLayout(t *testing.T) {
	c := testCatalog()

	_, quadArt, err := c.Resolve("julia")
	require.NoError(t, err)
	require.Equal(t, 6, quadArt.VertexCount())

	_, flow, err := c.Resolve("flowfield")
	require.NoError(t, err)
	require.Equal(t, DefaultPoints, flow.VertexCount())
	for i := 0; i < len(flow.Vertices); i += 4 {
		require.InDelta(t, 0, flow.Vertices[i], 1)
		require.InDelta(t, 0, flow.Vertices[i+1], 1)
		require.InDelta(t, 0.5, flow.Vertices[i+2], 0.5)
		require.InDelta(t, 0.5, flow.Vertices[i+3], 0.5)
	}

	small := Default(rand.New(rand.NewSource(2)), 10)
	_, flow, err = small.Resolve("flowfield")
	require.NoError(t, err)
	require.Equal(t, 10, flow.VertexCount())
}

func TestValidate(t *testing.T) {
	require.ErrorIs(t, NewCatalog().Validate(), ErrNoArts)

	broken := Art{
		VertexShader:   "shaders/vertex.glsl",
		FragmentShader: "shaders/broken.glsl",
		Vertices:       []float32{1, 2, 3},
		Layout:         PositionTexCoord(),
	}
	require.Error(t, broken.Validate())

	zeroStride := Art{
		VertexShader:   "shaders/vertex.glsl",
		FragmentShader: "shaders/zero.glsl",
		Vertices:       []float32{1, 2, 3, 4},
		Layout:         []Attribute{{Size: 0, Type: Float32, Stride: 0}},
	}
	require.NotPanics(t, func() {
		require.Error(t, zeroStride.Validate())
	})
	require.Equal(t, 0, zeroStride.VertexCount())
	require.Error(t, NewCatalog(zeroStride).Validate())

	negativeStride := zeroStride
	negativeStride.Layout = []Attribute{{Size: 2, Type: Float32, Stride: -8}}
	require.Error(t, negativeStride.Validate())
	require.Equal(t, 0, negativeStride.VertexCount())

	noComponents := zeroStride
	noComponents.Layout = []Attribute{{Size: 0, Type: Float32, Stride: 16}}
	require.Error(t, noComponents.Validate())

	duplicate := NewCatalog(testCatalog().Art(0), testCatalog().Art(0))
	require.Error(t, duplicate.Validate())
}

func TestUpdateStrategy(t *testing.T) {
	u := TimeAndResolution.Uniforms(1.5, 800, 600)
	require.Equal(t, float32(1.5), u.Time)
	require.NotNil(t, u.Resolution)
	require.Equal(t, float32(800), u.Resolution.X())
	require.Equal(t, float32(600), u.Resolution.Y())

	u = TimeOnly.Uniforms(2, 800, 600)
	require.Equal(t, float32(2), u.Time)
	require.Nil(t, u.Resolution)
}

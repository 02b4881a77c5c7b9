package programs

import "math/rand"

// FlowField scatters the given number of random points, which the vertex shader pushes
// along a time-varying vector field. Texcoords carry per-point speed and size.
func FlowField(rng *rand.Rand, points int) Art {
	verticies := make([]float32, 0, points*4)
	for i := 0; i < points; i++ {
		verticies = append(verticies,
			rng.Float32()*2-1,
			rng.Float32()*2-1,
			rng.Float32(),
			rng.Float32(),
		)
	}

	return Art{
		VertexShader:   "shaders/vertexflowfield.glsl",
		FragmentShader: "shaders/flowfield.glsl",
		Vertices:       verticies,
		Layout:         PositionTexCoord(),
		Update:         TimeOnly,
	}
}

package programs

func Mandelbrot() Art {
	return Art{
		VertexShader:   "shaders/vertex.glsl",
		FragmentShader: "shaders/mandelbrot.glsl",
		Vertices:       quad(),
		Layout:         PositionTexCoord(),
		Update:         TimeAndResolution,
	}
}

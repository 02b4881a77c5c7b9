package programs

// Julia renders a Julia set whose constant orbits the origin over time.
func Julia() Art {
	return Art{
		VertexShader:   "shaders/vertex.glsl",
		FragmentShader: "shaders/julia.glsl",
		Vertices:       quad(),
		Layout:         PositionTexCoord(),
		Update:         TimeAndResolution,
	}
}

// JuliaNoise is Julia with the sample position perturbed by value noise.
func JuliaNoise() Art {
	return Art{
		VertexShader:   "shaders/vertex.glsl",
		FragmentShader: "shaders/julianoise.glsl",
		Vertices:       quad(),
		Layout:         PositionTexCoord(),
		Update:         TimeAndResolution,
	}
}

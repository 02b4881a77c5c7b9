package render

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileError(t *testing.T) {
	err := &CompileError{
		Path: "shaders/julia.glsl",
		Log:  "0:12(3): error: syntax error\n\x00",
	}
	require.Equal(t, "shader shaders/julia.glsl failed to compile: 0:12(3): error: syntax error", err.Error())

	err = &CompileError{
		Path: "shaders/vertex.glsl + shaders/julia.glsl",
		Log:  "error: TexCoord not written by vertex shader\x00",
		Link: true,
	}
	require.Equal(t, "program shaders/vertex.glsl + shaders/julia.glsl failed to link: error: TexCoord not written by vertex shader", err.Error())
}

func TestCompileErrorUnwrapsThroughLoading(t *testing.T) {
	for _, link := range []bool{false, true} {
		wrapped := fmt.Errorf("loading art julia failed: %w", &CompileError{Path: "p", Link: link})

		var compileErr *CompileError
		require.True(t, errors.As(wrapped, &compileErr))
		require.Equal(t, link, compileErr.Link)
	}
}

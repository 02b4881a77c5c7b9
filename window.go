package main

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type InitializationError struct {
	Op  string
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("%v failed: %v", e.Op, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// NewRenderWindow creates the window and makes its GL context current.
// glfw.Init must already have been called.
func NewRenderWindow(config WindowConfig) (*RenderWindow, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(
		config.Width,
		config.Height,
		config.Title,
		nil,
		nil,
	)

	if err != nil {
		return nil, &InitializationError{Op: "glfw.CreateWindow", Err: err}
	}

	w := &RenderWindow{
		Window: window,
		title:  config.Title,
	}

	w.MakeContextCurrent()
	err = gl.Init()
	if err != nil {
		window.Destroy()
		return nil, &InitializationError{Op: "gl.Init", Err: err}
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	width, height := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))

	window.SetFramebufferSizeCallback(w.resize)
	window.SetKeyCallback(w.key)
	window.SetMouseButtonCallback(w.button)
	window.SetCursorPosCallback(w.cursor)

	return w, nil
}

type RenderWindow struct {
	*glfw.Window
	title string
}

func (w *RenderWindow) resize(_ *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (w *RenderWindow) key(window *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		window.SetShouldClose(true)
	}
}

func (w *RenderWindow) button(*glfw.Window, glfw.MouseButton, glfw.Action, glfw.ModifierKey) {}

func (w *RenderWindow) cursor(*glfw.Window, float64, float64) {}

// ShowArt puts the art's display name in the title bar.
func (w *RenderWindow) ShowArt(name string) {
	w.SetTitle(fmt.Sprintf("%v - %v", w.title, displayName(name)))
}

func (w *RenderWindow) PollEvents() {
	glfw.PollEvents()
}

func (w *RenderWindow) Clear(colour mgl32.Vec4) {
	gl.ClearColor(colour[0], colour[1], colour[2], colour[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (w *RenderWindow) FramebufferSize() (width, height int) {
	return w.GetFramebufferSize()
}

func (w *RenderWindow) Time() float64 {
	return glfw.GetTime()
}

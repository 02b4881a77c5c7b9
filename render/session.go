package render

import (
	"fmt"
	"io/fs"
	"log"
	"reflect"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/fragart/programs"
)

// CompileError reports a shader that failed to compile or a program that
// failed to link. For link failures Path is "<vertex> + <fragment>".
type CompileError struct {
	Path string
	Log  string
	Link bool
}

func (e *CompileError) Error() string {
	log := strings.TrimRight(e.Log, "\x00\n")
	if e.Link {
		return fmt.Sprintf("program %v failed to link: %v", e.Path, log)
	}
	return fmt.Sprintf("shader %v failed to compile: %v", e.Path, log)
}

// Session owns the program, vertex array and buffer for one art.
// It must be used on the thread that owns the GL context.
type Session struct {
	program   uint32
	vao       uint32
	vbo       uint32
	mode      uint32
	count     int32
	pointSize bool

	uniformLocations map[string]int32
}

// New compiles art's shaders from fsys and uploads its vertices.
func New(fsys fs.FS, art programs.Art) (*Session, error) {
	if err := art.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		count: int32(art.VertexCount()),
		mode:  gl.TRIANGLES,
	}
	if art.DrawMode() == programs.Points {
		s.mode = gl.POINTS
		s.pointSize = true
	}

	var err error
	s.program, err = loadProgram(fsys, art.VertexShader, art.FragmentShader)
	if err != nil {
		return nil, err
	}

	s.uniformLocations = make(map[string]int32)
	t := reflect.TypeOf(programs.Uniforms{})
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("uniform")
		s.uniformLocations[name] = gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(art.Vertices)*4, gl.Ptr(art.Vertices), gl.STATIC_DRAW)

	for _, attr := range art.Layout {
		gl.VertexAttribPointerWithOffset(
			attr.Index,
			attr.Size,
			uint32(attr.Type),
			attr.Normalized,
			attr.Stride,
			uintptr(attr.Offset),
		)
		gl.EnableVertexAttribArray(attr.Index)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return s, nil
}

// Update uploads every non-nil field of uniforms.
func (s *Session) Update(uniforms programs.Uniforms) {
	gl.UseProgram(s.program)

	v := reflect.ValueOf(&uniforms).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() == reflect.Pointer {
			if f.IsNil() {
				continue
			}
			f = f.Elem()
		}

		ptr := f.Addr().UnsafePointer()
		loc := s.uniformLocations[v.Type().Field(i).Tag.Get("uniform")]

		switch f.Type() {
		case reflect.TypeOf(float32(0)):
			gl.Uniform1fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(mgl32.Vec2{}):
			gl.Uniform2fv(loc, 1, (*float32)(ptr))
		default:
			log.Printf("unsupported uniform type %v", f.Type())
		}
	}
}

func (s *Session) Draw() {
	if s.pointSize {
		gl.Enable(gl.PROGRAM_POINT_SIZE)
	} else {
		gl.Disable(gl.PROGRAM_POINT_SIZE)
	}

	gl.UseProgram(s.program)
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(s.mode, 0, s.count)
}

// Delete releases all GL objects. It is safe to call more than once.
func (s *Session) Delete() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		s.vao = 0
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
		s.vbo = 0
	}
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

func loadProgram(fsys fs.FS, vertexPath, fragmentPath string) (uint32, error) {
	vertexShader, err := compileShader(fsys, vertexPath, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fsys, fragmentPath, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(program, l, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, &CompileError{Path: vertexPath + " + " + fragmentPath, Log: log, Link: true}
	}

	return program, nil
}

func compileShader(fsys fs.FS, path string, shaderType uint32) (uint32, error) {
	source, err := programs.ReadShader(fsys, path)
	if err != nil {
		return 0, err
	}

	source += "\x00"
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source)
	defer free()

	shader := gl.CreateShader(shaderType)
	gl.ShaderSource(shader, 1, cstring, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader, l, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, &CompileError{Path: path, Log: log}
	}

	return shader, nil
}

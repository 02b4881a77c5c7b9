package programs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms holds the per-frame values pushed to a shader program.
// Nil fields are left untouched.
type Uniforms struct {
	Time       float32     `uniform:"iTime"`
	Resolution *mgl32.Vec2 `uniform:"iResolution"`
}

// UpdateStrategy selects which uniforms an art receives every frame.
type UpdateStrategy int

const (
	TimeAndResolution UpdateStrategy = iota
	TimeOnly
)

func (s UpdateStrategy) String() string {
	switch s {
	case TimeAndResolution:
		return "time+resolution"
	case TimeOnly:
		return "time"
	default:
		return fmt.Sprintf("UpdateStrategy(%d)", int(s))
	}
}

// Uniforms builds the values for one frame. time is seconds since the
// context was created, width and height are the framebuffer size.
func (s UpdateStrategy) Uniforms(time float64, width, height int) Uniforms {
	u := Uniforms{Time: float32(time)}
	if s == TimeAndResolution {
		u.Resolution = &mgl32.Vec2{float32(width), float32(height)}
	}
	return u
}

package player

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/fragart/programs"
)

// Surface is the window the loop renders into.
type Surface interface {
	ShouldClose() bool
	PollEvents()
	Clear(colour mgl32.Vec4)
	FramebufferSize() (width, height int)
	SwapBuffers()
	// Time is seconds since the context was created.
	Time() float64
}

// Session is the GPU state for a single art.
type Session interface {
	Update(uniforms programs.Uniforms)
	Draw()
	Delete()
}

type BuildFunc func(art programs.Art) (Session, error)

// Loop renders arts from Catalog until the surface closes or,
// in run-all mode, every art has played for Interval seconds.
type Loop struct {
	Surface    Surface
	Catalog    programs.Catalog
	Build      BuildFunc
	Mode       Mode
	Start      int
	Interval   float64
	Background mgl32.Vec4

	// OnSwitch is called with each art just before its session is built.
	OnSwitch func(art programs.Art)
}

func (l *Loop) Run() (err error) {
	if l.Catalog.Len() == 0 {
		return programs.ErrNoArts
	}
	if l.Start < 0 || l.Start >= l.Catalog.Len() {
		return fmt.Errorf("start index %v out of range [0, %v)", l.Start, l.Catalog.Len())
	}
	if l.Build == nil {
		return errors.New("no session builder")
	}

	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	state := RunState{
		Mode:       l.Mode,
		Index:      l.Start,
		LastSwitch: l.Surface.Time(),
	}

	art := l.Catalog.Art(state.Index)
	session, err := l.build(art)
	if err != nil {
		return err
	}
	defer func() {
		if session != nil {
			session.Delete()
		}
	}()

	for !l.Surface.ShouldClose() {
		l.Surface.PollEvents()

		switch state.Tick(l.Surface.Time(), interval, l.Catalog.Len()) {
		case Closing:
			log.Printf("played all %v arts", l.Catalog.Len())
			return nil

		case Advancing:
			session.Delete()
			session = nil

			art = l.Catalog.Art(state.Index)
			session, err = l.build(art)
			if err != nil {
				return err
			}
		}

		l.Surface.Clear(l.Background)
		width, height := l.Surface.FramebufferSize()
		session.Update(art.Update.Uniforms(l.Surface.Time(), width, height))
		session.Draw()
		l.Surface.SwapBuffers()
	}

	return nil
}

func (l *Loop) build(art programs.Art) (Session, error) {
	log.Printf("rendering %v", art.Name())
	if l.OnSwitch != nil {
		l.OnSwitch(art)
	}

	session, err := l.Build(art)
	if err != nil {
		return nil, fmt.Errorf("loading art %v failed: %w", art.Name(), err)
	}
	return session, nil
}

package player

import "fmt"

// DefaultInterval is how long each art plays in run-all mode, in seconds.
const DefaultInterval = 30.0

type Mode int

const (
	SingleArt Mode = iota
	RunAll
)

func (m Mode) String() string {
	switch m {
	case SingleArt:
		return "single"
	case RunAll:
		return "run-all"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

type State int

const (
	Running State = iota
	Advancing
	Closing
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Advancing:
		return "advancing"
	case Closing:
		return "closing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// RunState tracks which art is playing and when it started.
type RunState struct {
	Mode       Mode
	Index      int
	LastSwitch float64
}

// Tick moves the state forward to now, given the switch interval in seconds
// and the number of arts. Only run-all mode ever leaves Running; it does not
// wrap past the last art.
func (s *RunState) Tick(now, interval float64, arts int) State {
	if s.Mode != RunAll || now-s.LastSwitch < interval {
		return Running
	}

	s.Index++
	if s.Index >= arts {
		return Closing
	}
	s.LastSwitch = now
	return Advancing
}

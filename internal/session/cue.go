package session

// Sound names the feedback sound a cue plays.
type Sound int

const (
	Chime Sound = iota
	Bucket
)

func (s Sound) String() string {
	if s == Bucket {
		return "bucket"
	}
	return "chime"
}

// Pitch bounds applied to every cue.
const (
	MinPitch = 0.5
	MaxPitch = 2.0
)

// Cue is a short feedback signal delivered to the actor.
type Cue struct {
	Sound Sound
	Pitch float64
}

func (c Cue) String() string {
	return c.Sound.String()
}

// CueSink receives cues for an actor.
type CueSink interface {
	Play(sessionID string, cue Cue)
}

// CueFunc adapts a function to CueSink.
type CueFunc func(sessionID string, cue Cue)

func (f CueFunc) Play(sessionID string, cue Cue) {
	f(sessionID, cue)
}

func clampPitch(p float64) float64 {
	switch {
	case p < MinPitch:
		return MinPitch
	case p > MaxPitch:
		return MaxPitch
	default:
		return p
	}
}

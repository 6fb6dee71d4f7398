package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundWhoosh SoundType = iota // Curve fired
	SoundBell                    // Enemy destroyed
	SoundBuzz                    // Curve blocked by an obstacle
	soundTypeCount
)

func (st SoundType) String() string {
	switch st {
	case SoundWhoosh:
		return "whoosh"
	case SoundBell:
		return "bell"
	case SoundBuzz:
		return "buzz"
	}
	return "unknown"
}

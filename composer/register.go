package composer

// RegisterID names one octave band of a scale
type RegisterID int

const (
	Low RegisterID = iota
	Middle
	High
	numRegisters
)

func (r RegisterID) String() string {
	switch r {
	case Low:
		return "low"
	case Middle:
		return "middle"
	case High:
		return "high"
	}
	return "unknown"
}

// Register is one band of pitches with constant-time membership
type Register struct {
	ID      RegisterID
	Pitches []int
	member  [128]bool
}

// Contains reports whether pitch belongs to this band
func (r *Register) Contains(pitch int) bool {
	return pitch >= 0 && pitch < 128 && r.member[pitch]
}

// RegisterSet holds the low, middle and high bands derived from a scale
type RegisterSet struct {
	bands [numRegisters]Register
	union [128]bool
}

// NewRegisterSet builds low = scale-12, middle = scale, high = scale+12.
// Pitches that would leave 0..127 are dropped from their band.
func NewRegisterSet(scale []int) *RegisterSet {
	s := &RegisterSet{}
	for id, shift := range [numRegisters]int{-12, 0, 12} {
		band := Register{ID: RegisterID(id)}
		for _, p := range scale {
			p += shift
			if p < 0 || p > 127 {
				continue
			}
			band.Pitches = append(band.Pitches, p)
			band.member[p] = true
			s.union[p] = true
		}
		s.bands[id] = band
	}
	return s
}

// Contains reports membership over low ∪ middle ∪ high
func (s *RegisterSet) Contains(pitch int) bool {
	return pitch >= 0 && pitch < 128 && s.union[pitch]
}

// Band returns one register
func (s *RegisterSet) Band(id RegisterID) *Register {
	return &s.bands[id]
}

// Bands returns the three registers for random selection
func (s *RegisterSet) Bands() []RegisterID {
	return []RegisterID{Low, Middle, High}
}

// others returns every register except id
func others(id RegisterID) []RegisterID {
	out := make([]RegisterID, 0, numRegisters-1)
	for r := Low; r < numRegisters; r++ {
		if r != id {
			out = append(out, r)
		}
	}
	return out
}
